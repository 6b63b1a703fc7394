// Package export writes lead collections to files in csv, json, excel
// and markdown formats.
//
// All tabular formats share one flattening: fixed identity and contact
// columns first, then one column per social platform seen in the
// collection. Filenames carry a timestamp so repeated exports never
// overwrite each other.
package export
