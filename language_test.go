package i18n

import (
	"errors"
	"slices"
	"testing"

	"golang.org/x/text/language"
)

func TestParseLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Language
		wantErr bool
	}{
		{in: "en", want: English},
		{in: "en-US", want: English},
		{in: "HI", want: Hindi},
		{in: " ta-IN ", want: Tamil},
		{in: "fr", wantErr: true},
		{in: "", wantErr: true},
		{in: "not a tag", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseLanguage(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnsupportedLanguage) {
				t.Errorf("ParseLanguage(%q) err = %v, want ErrUnsupportedLanguage", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseLanguage(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestMatchLanguage(t *testing.T) {
	t.Parallel()

	if got := MatchLanguage(language.MustParse("ta-LK"), language.English); got != Tamil {
		t.Fatalf("MatchLanguage(ta-LK, en) = %s, want ta", got)
	}
	if got := MatchLanguage(language.French, language.Hindi); got != Hindi {
		t.Fatalf("MatchLanguage(fr, hi) = %s, want hi", got)
	}
	if got := MatchLanguage(language.Japanese); got != English {
		t.Fatalf("MatchLanguage(ja) = %s, want en", got)
	}
	if got := MatchLanguage(); got != DefaultLanguage {
		t.Fatalf("MatchLanguage() = %s", got)
	}
}

func TestMatchLanguageOr(t *testing.T) {
	t.Parallel()

	if got := MatchLanguageOr(Hindi, language.French, language.German); got != Hindi {
		t.Fatalf("MatchLanguageOr(hi, fr, de) = %s, want hi", got)
	}
	if got := MatchLanguageOr(Hindi, language.MustParse("ta-IN")); got != Tamil {
		t.Fatalf("MatchLanguageOr(hi, ta-IN) = %s, want ta", got)
	}
	if got := MatchLanguageOr(Tamil); got != Tamil {
		t.Fatalf("MatchLanguageOr(ta) = %s, want ta", got)
	}
	if got := MatchLanguageOr("xx", language.Japanese); got != DefaultLanguage {
		t.Fatalf("MatchLanguageOr(xx, ja) = %s, want %s", got, DefaultLanguage)
	}
}

func TestLanguage_Metadata(t *testing.T) {
	t.Parallel()

	if got := Languages(); !slices.Equal(got, []Language{English, Hindi, Tamil}) {
		t.Fatalf("Languages() = %v", got)
	}
	if got := Tamil.NativeName(); got != "தமிழ்" {
		t.Fatalf("NativeName = %q", got)
	}
	if got := English.Flag(); got != "🇬🇧" {
		t.Fatalf("Flag = %q", got)
	}
	if got := Hindi.Tag(); got != language.Hindi {
		t.Fatalf("Tag = %v", got)
	}
	if Language("fr").Valid() || Language("fr").Tag() != language.Und {
		t.Fatal("fr must be unsupported")
	}
}
