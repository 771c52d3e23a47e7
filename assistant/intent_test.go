package assistant

import "testing"

func TestParseCompletionPlainText(t *testing.T) {
	cases := []string{
		"Sure! Here is how you stay productive.",
		"",
		"{not json at all",
		`{"no_action": true}`,
		`{"action": 42}`,
		`Use {"action": "CREATE_TASK"} like this.`,
	}
	for _, text := range cases {
		p := parseCompletion(text)
		if p.kind != parsePlain {
			t.Fatalf("expected plain for %q, got kind %d", text, p.kind)
		}
	}
}

func TestParseCompletionStructured(t *testing.T) {
	p := parseCompletion(`{"action": "CREATE_TASK", "payload": {"title": "Buy milk", "priority": "HIGH"}}`)
	if p.kind != parseStructured {
		t.Fatalf("expected structured, got kind %d", p.kind)
	}
	if p.intent.Action != ActionCreateTask {
		t.Fatalf("unexpected action: %s", p.intent.Action)
	}
	if title, _ := p.intent.Payload.GetString("title"); title != "Buy milk" {
		t.Fatalf("unexpected title: %q", title)
	}
}

func TestParseCompletionLeadingWhitespace(t *testing.T) {
	p := parseCompletion("\n  \t" + `{"action": "create_note", "payload": {"title": "n"}}`)
	if p.kind != parseStructured || p.intent.Action != ActionCreateNote {
		t.Fatalf("expected CREATE_NOTE, got %+v", p)
	}
}

func TestParseCompletionUnknownAction(t *testing.T) {
	p := parseCompletion(`{"action": "DELETE_EVERYTHING", "payload": {}}`)
	if p.kind != parseUnsupported {
		t.Fatalf("expected unsupported, got kind %d", p.kind)
	}
	if p.action != "DELETE_EVERYTHING" {
		t.Fatalf("unexpected raw action: %q", p.action)
	}
}

func TestParseCompletionMissingPayload(t *testing.T) {
	p := parseCompletion(`{"action": "CREATE_GOAL"}`)
	if p.kind != parseStructured {
		t.Fatalf("expected structured, got kind %d", p.kind)
	}
	if len(p.intent.Payload) != 0 {
		t.Fatalf("expected empty payload, got %d entries", len(p.intent.Payload))
	}
}

func TestParseCompletionBadPayload(t *testing.T) {
	// A payload of the wrong shape downgrades to an empty bag, not an error.
	p := parseCompletion(`{"action": "CREATE_HABIT", "payload": [1, 2]}`)
	if p.kind != parseStructured {
		t.Fatalf("expected structured, got kind %d", p.kind)
	}
	if len(p.intent.Payload) != 0 {
		t.Fatalf("expected empty payload, got %d entries", len(p.intent.Payload))
	}
}
