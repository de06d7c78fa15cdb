package menu

import "testing"

func testCatalog() []Item {
	return []Item{
		{ID: "itm_1", Name: "Greek Salad", Price: 12.95, Category: "salads"},
		{ID: "itm_2", Name: "Caesar Salad", Price: 11.50, Category: "salads"},
		{ID: "itm_3", Name: "Margherita Pizza", Price: 16.00, Category: "pizza"},
		{ID: "itm_4", Name: "Coca-Cola", Price: 3.25, Category: "drinks", Aliases: []string{"coke"}},
	}
}

func TestMatchResolvesSpokenNames(t *testing.T) {
	matcher := NewMatcher(testCatalog())

	testCases := []struct {
		name       string
		spoken     string
		expectedID string
		usable     bool
	}{
		{name: "exact", spoken: "Greek Salad", expectedID: "itm_1", usable: true},
		{name: "case insensitive", spoken: "greek salad", expectedID: "itm_1", usable: true},
		{name: "punctuation noise", spoken: "greek, salad.", expectedID: "itm_1", usable: true},
		{name: "minor typo", spoken: "grek salad", expectedID: "itm_1", usable: true},
		{name: "partial name", spoken: "margherita", expectedID: "itm_3", usable: true},
		{name: "alias", spoken: "coke", expectedID: "itm_4", usable: true},
		{name: "not on the menu", spoken: "lobster thermidor", usable: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			match := matcher.Match(testCase.spoken)

			if !testCase.usable {
				if match.Confidence >= Threshold {
					t.Fatalf("expected unusable match, got %q with confidence %.2f", match.Item.Name, match.Confidence)
				}
				return
			}

			if match.Item == nil {
				t.Fatalf("expected a match for %q", testCase.spoken)
			}
			if match.Item.ID != testCase.expectedID {
				t.Fatalf("expected %q, got %q (confidence %.2f)", testCase.expectedID, match.Item.ID, match.Confidence)
			}
			if match.Confidence < Threshold {
				t.Fatalf("expected usable confidence, got %.2f", match.Confidence)
			}
		})
	}
}

func TestMatchExactNamesScoreFull(t *testing.T) {
	matcher := NewMatcher(testCatalog())

	match := matcher.Match("greek salad")
	if match.Confidence != 1.0 {
		t.Fatalf("expected full confidence for normalized exact match, got %.2f", match.Confidence)
	}
}

func TestMatchIsCatalogOrderIndependent(t *testing.T) {
	catalog := testCatalog()
	reversed := make([]Item, 0, len(catalog))
	for i := len(catalog) - 1; i >= 0; i-- {
		reversed = append(reversed, catalog[i])
	}

	forward := NewMatcher(catalog).Match("salad")
	backward := NewMatcher(reversed).Match("salad")

	if forward.Item == nil || backward.Item == nil {
		t.Fatalf("expected both matchers to produce a candidate")
	}
	if forward.Item.ID != backward.Item.ID || forward.Confidence != backward.Confidence {
		t.Fatalf("expected order-independent result, got %q/%.2f and %q/%.2f",
			forward.Item.ID, forward.Confidence, backward.Item.ID, backward.Confidence)
	}
}

func TestMatchEmptyInputs(t *testing.T) {
	if match := NewMatcher(nil).Match("greek salad"); match.Item != nil {
		t.Fatalf("expected no match from an empty catalog")
	}
	if match := NewMatcher(testCatalog()).Match("   "); match.Item != nil {
		t.Fatalf("expected no match for blank input")
	}
}
