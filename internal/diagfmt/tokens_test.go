package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func TestFormatTokensPretty(t *testing.T) {
	toks := lexFixture(t, `x = "a\n"`)
	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, toks); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "  1: Ident") || !strings.HasSuffix(lines[0], "at 1:0-1:1") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[2], `"\"a\\n\"" ("a\n")`) {
		t.Errorf("line 2 = %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], "  4: EOF") {
		t.Errorf("line 3 = %q", lines[3])
	}
}

func TestFormatTokensJSONAndMsgpack(t *testing.T) {
	toks := lexFixture(t, "f(1.5)")

	var jbuf bytes.Buffer
	if err := FormatTokensJSON(&jbuf, toks); err != nil {
		t.Fatal(err)
	}
	var fromJSON []TokenOutput
	if err := json.Unmarshal(jbuf.Bytes(), &fromJSON); err != nil {
		t.Fatal(err)
	}

	var mbuf bytes.Buffer
	if err := FormatTokensMsgpack(&mbuf, toks); err != nil {
		t.Fatal(err)
	}
	var fromMsgpack []TokenOutput
	if err := msgpack.Unmarshal(mbuf.Bytes(), &fromMsgpack); err != nil {
		t.Fatal(err)
	}

	if len(fromJSON) != 5 || len(fromMsgpack) != 5 {
		t.Fatalf("json %d tokens, msgpack %d tokens", len(fromJSON), len(fromMsgpack))
	}
	for i := range fromJSON {
		if fromJSON[i] != fromMsgpack[i] {
			t.Errorf("token %d: json %+v, msgpack %+v", i, fromJSON[i], fromMsgpack[i])
		}
	}
	if fromJSON[2].Kind != "NumberLit" || fromJSON[2].Literal != "1.5" {
		t.Errorf("number token = %+v", fromJSON[2])
	}
	if fromJSON[0].Literal != "" {
		t.Errorf("identifier carries literal %q", fromJSON[0].Literal)
	}
}
