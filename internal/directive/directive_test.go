package directive

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		literal string
		want    Kind
		arg     string
		ok      bool
	}{
		{"disable", "<!-- hongdown-disable -->", KindDisable, "", true},
		{"enable", "<!-- hongdown-enable -->", KindEnable, "", true},
		{"disable-file", "<!-- hongdown-disable-file -->", KindDisableFile, "", true},
		{"disable-next-line", "<!-- hongdown-disable-next-line -->", KindDisableNextLine, "", true},
		{"disable-next-section", "<!-- hongdown-disable-next-section -->", KindDisableNextSection, "", true},
		{"proper-nouns", "<!-- hongdown-proper-nouns: Foo, Bar -->", KindProperNouns, "Foo, Bar", true},
		{"common-nouns", "<!-- hongdown-common-nouns: internet -->", KindCommonNouns, "internet", true},
		{"unrelated comment", "<!-- just a note -->", KindNone, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, arg, ok := Classify(tt.literal)
			if kind != tt.want || arg != tt.arg || ok != tt.ok {
				t.Errorf("Classify(%q) = (%v, %q, %v), want (%v, %q, %v)",
					tt.literal, kind, arg, ok, tt.want, tt.arg, tt.ok)
			}
		})
	}
}

func TestTracker_DisableEnable(t *testing.T) {
	tr := NewTracker()
	if tr.BlockDisabled() {
		t.Fatal("fresh tracker should not disable blocks")
	}
	tr.Observe(KindDisable)
	if !tr.BlockDisabled() {
		t.Fatal("expected disabled after KindDisable")
	}
	tr.Observe(KindEnable)
	if tr.BlockDisabled() {
		t.Fatal("expected enabled after KindEnable")
	}
}

func TestTracker_DisableFileIsSticky(t *testing.T) {
	tr := NewTracker()
	tr.Observe(KindDisableFile)
	if !tr.FileDisabled() {
		t.Fatal("expected FileDisabled after KindDisableFile")
	}
	tr.Observe(KindEnable)
	if !tr.FileDisabled() {
		t.Fatal("KindEnable must not clear disable-file")
	}
}

func TestTracker_DisableNextLineIsOneShot(t *testing.T) {
	tr := NewTracker()
	tr.Observe(KindDisableNextLine)
	if !tr.BlockDisabled() {
		t.Fatal("expected disabled immediately after disable-next-line")
	}
	tr.ConsumeBlock()
	if tr.BlockDisabled() {
		t.Fatal("disable-next-line should not persist past one block")
	}
}

func TestTracker_DisableNextSectionEndsAtHeading(t *testing.T) {
	tr := NewTracker()
	tr.Observe(KindDisableNextSection)
	if !tr.BlockDisabled() {
		t.Fatal("expected disabled inside the disabled section")
	}
	tr.ObserveHeadingLevel(2)
	if tr.BlockDisabled() {
		t.Fatal("expected re-enabled after a level-2 heading")
	}
}

func TestSplitNounList_EmptyIsInvalid(t *testing.T) {
	entries, bad := splitNounList("  ,  ,")
	if !bad {
		t.Errorf("expected an empty noun list to be flagged invalid, got entries=%v", entries)
	}
}

func TestSplitNounList_TrimsAndSplits(t *testing.T) {
	entries, bad := splitNounList(" Foo ,Bar,  Baz ")
	if bad {
		t.Fatal("expected a valid noun list")
	}
	want := []string{"Foo", "Bar", "Baz"}
	if len(entries) != len(want) {
		t.Fatalf("entries = %v, want %v", entries, want)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i], want[i])
		}
	}
}
