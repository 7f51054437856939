package serializer

import (
	"testing"

	"github.com/hongdown/hongdown/internal/ast"
)

func textChildren(s string) []ast.Node {
	return []ast.Node{ast.NewText(1, s)}
}

func firstLiteral(children []ast.Node) string {
	if len(children) == 0 {
		return ""
	}
	t, ok := children[0].(*ast.Text)
	if !ok {
		return ""
	}
	return t.Literal
}

func TestSentenceCaseHeading_LowersExceptFirstWord(t *testing.T) {
	children := textChildren("Getting Started With Databases")
	sentenceCaseHeading(children, newNounSet(nil, nil, nil, nil))
	got := firstLiteral(children)
	want := "Getting started with databases"
	if got != want {
		t.Errorf("sentenceCaseHeading() = %q, want %q", got, want)
	}
}

func TestSentenceCaseHeading_PreservesProperNoun(t *testing.T) {
	children := textChildren("Why We Chose Go And Kubernetes")
	sentenceCaseHeading(children, newNounSet(nil, nil, nil, nil))
	got := firstLiteral(children)
	want := "Why we chose Go and Kubernetes"
	if got != want {
		t.Errorf("sentenceCaseHeading() = %q, want %q", got, want)
	}
}

func TestSentenceCaseHeading_PreservesAllCapsAcronym(t *testing.T) {
	children := textChildren("Using The API And CLI Together")
	sentenceCaseHeading(children, newNounSet(nil, nil, nil, nil))
	got := firstLiteral(children)
	want := "Using the API and CLI together"
	if got != want {
		t.Errorf("sentenceCaseHeading() = %q, want %q", got, want)
	}
}

func TestSentenceCaseHeading_ConfigProperNounOverride(t *testing.T) {
	children := textChildren("My Custom Widget Name Matters")
	ns := newNounSet([]string{"Widget"}, nil, nil, nil)
	sentenceCaseHeading(children, ns)
	got := firstLiteral(children)
	want := "My custom Widget name matters"
	if got != want {
		t.Errorf("sentenceCaseHeading() = %q, want %q", got, want)
	}
}

func TestSentenceCaseHeading_CommonNounRemovesBuiltin(t *testing.T) {
	children := textChildren("A Sentence About Go Bananas")
	ns := newNounSet(nil, []string{"Go"}, nil, nil)
	sentenceCaseHeading(children, ns)
	got := firstLiteral(children)
	want := "A sentence about go bananas"
	if got != want {
		t.Errorf("sentenceCaseHeading() = %q, want %q", got, want)
	}
}

func TestCaseHyphenated_EachSegmentIndependent(t *testing.T) {
	st := &caseState{nouns: newNounSet(nil, nil, nil, nil)}
	got := caseHyphenated("Multi-PART-word", st)
	want := "Multi-part-word"
	if got != want {
		t.Errorf("caseHyphenated() = %q, want %q", got, want)
	}
}

func TestIsAcronymWithDots(t *testing.T) {
	if !isAcronymWithDots("U.S.A.") {
		t.Error("expected U.S.A. to be recognized as a dotted acronym")
	}
	if isAcronymWithDots("etc.") {
		t.Error("did not expect etc. to be recognized as a dotted acronym")
	}
}

func TestIsAcronymPlural(t *testing.T) {
	if !isAcronymPlural("APIs") {
		t.Error("expected APIs to be recognized as a plural acronym")
	}
	if isAcronymPlural("Class") {
		t.Error("did not expect Class to be recognized as a plural acronym")
	}
}
