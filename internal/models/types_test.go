package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestChoiceListUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want ChoiceList
	}{
		{"array", `["Harga","Kualitas"]`, ChoiceList{"Harga", "Kualitas"}},
		{"joined string", `"Harga, Kualitas"`, ChoiceList{"Harga", "Kualitas"}},
		{"single string", `"Harga"`, ChoiceList{"Harga"}},
		{"empty string", `""`, ChoiceList{}},
		{"empty array", `[]`, ChoiceList{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got ChoiceList
			if err := json.Unmarshal([]byte(tc.in), &got); err != nil {
				t.Fatalf("unmarshal %s: %v", tc.in, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("unmarshal %s = %#v, want %#v", tc.in, got, tc.want)
			}
		})
	}
}

func TestChoiceListMarshalNilAsEmptyArray(t *testing.T) {
	b, err := json.Marshal(ChoiceList(nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "[]" {
		t.Fatalf("marshal nil = %s, want []", b)
	}
}

func TestJoinSplitRoundTrip(t *testing.T) {
	lists := []ChoiceList{
		{"A"},
		{"A", "B"},
		{"Promo diskon", "Gratis potong ke-10", "Referral"},
	}
	for _, l := range lists {
		if got := SplitChoices(l.Join()); !reflect.DeepEqual(got, l) {
			t.Fatalf("SplitChoices(Join(%v)) = %v", l, got)
		}
	}
}

func TestSplitChoicesEdges(t *testing.T) {
	if got := SplitChoices(""); len(got) != 0 {
		t.Fatalf("empty value should split to empty list, got %v", got)
	}
	if got := SplitChoices("WhatsApp"); !reflect.DeepEqual(got, ChoiceList{"WhatsApp"}) {
		t.Fatalf("plain value should become one-element list, got %v", got)
	}
}
