package repl

import (
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-entail/entail/kb"
)

func run(t *testing.T, script string) string {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	base := kb.New(kb.WithLogger(log))
	var out strings.Builder
	r := New(base, &out, WithColor(false))
	require.NoError(t, r.Run(strings.NewReader(script)))
	return out.String()
}

func TestSession(t *testing.T) {
	out := run(t, "A -> B\nA\nB?\nC?\n")
	expected := "> CNF: (!A | B)\n" +
		"> CNF: (A)\n" +
		"> Proved!\n" +
		"> Not proved.\n"
	assert.Equal(t, expected, out)
}

func TestSessionStopsOnBlankLine(t *testing.T) {
	out := run(t, "A\n\nB\n")
	assert.Equal(t, "> CNF: (A)\n", out, "input after the blank line must not be processed")
}

func TestSyntaxErrorRecovery(t *testing.T) {
	out := run(t, "A &\nA\nA?\n")
	expected := "   ^\n" +
		"> Error! syntax error at column 4: expected expression\n" +
		"> CNF: (A)\n" +
		"> Proved!\n"
	assert.Equal(t, expected, out)
}

func TestQuestionSyntaxErrorRecovery(t *testing.T) {
	out := run(t, "A\n(A?\nA?\n")
	expected := "> CNF: (A)\n" +
		"^\n" +
		"> Error! syntax error at column 1: unmatched '('\n" +
		"> Proved!\n"
	assert.Equal(t, expected, out)
}

func TestContradictionWarning(t *testing.T) {
	out := run(t, "~\nB?\n")
	expected := "> CNF: (~)\n" +
		"> Contradiction! The axioms entail anything.\n" +
		"> Proved!\n"
	assert.Equal(t, expected, out)
}

func TestTautologyAxiomEchoesEmptySet(t *testing.T) {
	out := run(t, "A | !A\n")
	assert.Equal(t, "> CNF: *\n", out)
}
