package contact

import (
	"reflect"
	"testing"
)

func TestFinderFind(t *testing.T) {
	t.Parallel()

	t.Run("finds and lowercases addresses", func(t *testing.T) {
		t.Parallel()

		f := NewFinder()
		got := f.Find("Contact Jane.Doe@Acme.COM or support@acme.com today")

		want := []string{"jane.doe@acme.com", "support@acme.com"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Find() = %v, want %v", got, want)
		}
	})

	t.Run("deduplicates in first-occurrence order", func(t *testing.T) {
		t.Parallel()

		f := NewFinder()
		got := f.Find("a@acme.com b@acme.com A@ACME.COM")

		want := []string{"a@acme.com", "b@acme.com"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Find() = %v, want %v", got, want)
		}
	})

	t.Run("excludes false positives", func(t *testing.T) {
		t.Parallel()

		f := NewFinder()
		inputs := []string{
			"avatar@2x.png",
			"icon@large.jpg",
			"noreply@example.com",
			"user@test.com",
			"abc123@sentry.io",
			"logo@3x.svg",
		}
		for _, input := range inputs {
			if got := f.Find(input); len(got) != 0 {
				t.Errorf("Find(%q) = %v, want no matches", input, got)
			}
		}
	})

	t.Run("empty input yields empty non-nil slice", func(t *testing.T) {
		t.Parallel()

		f := NewFinder()
		got := f.Find("")
		if got == nil || len(got) != 0 {
			t.Errorf("Find(\"\") = %v, want empty slice", got)
		}
	})

	t.Run("strict mode drops malformed candidates", func(t *testing.T) {
		t.Parallel()

		f := NewFinder(WithStrictValidation(true))
		if got := f.Find("real@acme.com"); len(got) != 1 {
			t.Errorf("strict mode rejected a valid address: %v", got)
		}
	})
}

func TestFinderFindInHTML(t *testing.T) {
	t.Parallel()

	t.Run("strips tags before scanning", func(t *testing.T) {
		t.Parallel()

		f := NewFinder()
		got := f.FindInHTML(`<p>Reach us at <b>hello@acme.com</b></p>`)

		want := []string{"hello@acme.com"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("FindInHTML() = %v, want %v", got, want)
		}
	})

	t.Run("adjacent elements do not concatenate", func(t *testing.T) {
		t.Parallel()

		// Without the tag-to-space replacement "jane" and the address
		// would merge into janehello@acme.com.
		f := NewFinder()
		got := f.FindInHTML(`<span>jane</span><span>hello@acme.com</span>`)

		want := []string{"hello@acme.com"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("FindInHTML() = %v, want %v", got, want)
		}
	})

	t.Run("decodes entity obfuscation", func(t *testing.T) {
		t.Parallel()

		f := NewFinder()
		got := f.FindInHTML(`<p>jane&at;acme&dot;com</p>`)

		want := []string{"jane@acme.com"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("FindInHTML() = %v, want %v", got, want)
		}
	})

	t.Run("decodes numeric entities", func(t *testing.T) {
		t.Parallel()

		f := NewFinder()
		got := f.FindInHTML(`<p>jane&#64;acme&#46;com</p>`)

		want := []string{"jane@acme.com"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("FindInHTML() = %v, want %v", got, want)
		}
	})
}
