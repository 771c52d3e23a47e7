package domain

import (
	"encoding/json"
	"testing"
)

func TestDecodeBagKinds(t *testing.T) {
	raw := json.RawMessage(`{
		"title": "Buy milk",
		"amount": 50000,
		"pinned": true,
		"nothing": null,
		"nested": {"inner": "x"},
		"items": ["a", "b"]
	}`)

	bag, err := DecodeBag(raw)
	if err != nil {
		t.Fatalf("DecodeBag failed: %v", err)
	}

	if s, ok := bag.GetString("title"); !ok || s != "Buy milk" {
		t.Fatalf("unexpected title: %q %v", s, ok)
	}
	if n, ok := bag.GetNumber("amount"); !ok || n != 50000 {
		t.Fatalf("unexpected amount: %v %v", n, ok)
	}
	if b, ok := bag.GetBool("pinned"); !ok || !b {
		t.Fatalf("unexpected pinned: %v %v", b, ok)
	}
	if v, ok := bag["nothing"]; !ok || v.Kind() != KindNull {
		t.Fatalf("expected null value, got %v", v.Kind())
	}
	nested, ok := bag["nested"].AsObject()
	if !ok {
		t.Fatalf("expected nested object")
	}
	if s, _ := nested.GetString("inner"); s != "x" {
		t.Fatalf("unexpected nested value: %q", s)
	}
	// Arrays are outside the grammar and are dropped.
	if bag.Has("items") {
		t.Fatalf("expected array field to be dropped")
	}
}

func TestDecodeBagEmpty(t *testing.T) {
	bag, err := DecodeBag(nil)
	if err != nil {
		t.Fatalf("DecodeBag failed: %v", err)
	}
	if len(bag) != 0 {
		t.Fatalf("expected empty bag, got %d entries", len(bag))
	}
}

func TestDecodeBagNotAnObject(t *testing.T) {
	if _, err := DecodeBag(json.RawMessage(`[1,2]`)); err == nil {
		t.Fatalf("expected error for non-object payload")
	}
}

func TestBagKindMismatch(t *testing.T) {
	bag := Bag{"amount": NumberValue(12)}

	if _, ok := bag.GetString("amount"); ok {
		t.Fatalf("number must not read as string")
	}
	if _, ok := bag.GetNumber("missing"); ok {
		t.Fatalf("missing key must not read")
	}
}

func TestBagToMapRoundsKinds(t *testing.T) {
	bag := Bag{
		"name":   StringValue("Coffee"),
		"amount": NumberValue(3.5),
		"urgent": BoolValue(false),
		"extra":  ObjectValue(Bag{"k": StringValue("v")}),
		"empty":  {},
	}

	m := bag.ToMap()
	if m["name"] != "Coffee" || m["amount"] != 3.5 || m["urgent"] != false {
		t.Fatalf("unexpected map: %+v", m)
	}
	inner, ok := m["extra"].(map[string]any)
	if !ok || inner["k"] != "v" {
		t.Fatalf("unexpected nested map: %+v", m["extra"])
	}
	if v, present := m["empty"]; !present || v != nil {
		t.Fatalf("null value should render as nil")
	}
}
