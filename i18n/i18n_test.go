package i18n

import "testing"

func TestLocales(t *testing.T) {
	for locale, messages := range translations {
		for key := range EN {
			if _, ok := messages[key]; !ok {
				t.Errorf("%s: missing %s", locale, key)
			}
		}
	}
}

func TestSetLocale(t *testing.T) {
	defer SetLocale("en")

	if err := SetLocale("xx"); err == nil {
		t.Error("unknown locale accepted")
	}

	if err := SetLocale("ja"); err != nil {
		t.Fatal(err)
	}

	if s := L("year_bc", 3); s != "前3年" {
		t.Errorf("L = %q", s)
	}
}
