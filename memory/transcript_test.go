package memory_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ghscout/ghscout/internal/provider"
	"github.com/ghscout/ghscout/memory"
)

func TestTranscript_StartsWithSystemMessage(t *testing.T) {
	tr := memory.NewTranscript("be helpful")
	msgs := tr.Messages()
	if len(msgs) != 1 {
		t.Fatalf("want 1 message, got %d", len(msgs))
	}
	if msgs[0].Role != provider.RoleSystem || msgs[0].Text() != "be helpful" {
		t.Fatalf("unexpected head message: %+v", msgs[0])
	}
}

func TestTranscript_AppendPreservesOrder(t *testing.T) {
	tr := memory.NewTranscript("sys")
	tr.Append(provider.NewUserMessage("one"))
	tr.Append(provider.NewToolMessage("call_1", "getUserData", "{}"))
	tr.Append(provider.NewUserMessage("two"))

	msgs := tr.Messages()
	if tr.Len() != 4 || len(msgs) != 4 {
		t.Fatalf("want 4 messages, got len=%d snapshot=%d", tr.Len(), len(msgs))
	}
	wantRoles := []string{provider.RoleSystem, provider.RoleUser, provider.RoleTool, provider.RoleUser}
	for i, want := range wantRoles {
		if msgs[i].Role != want {
			t.Errorf("message %d: want role %s, got %s", i, want, msgs[i].Role)
		}
	}
	if msgs[2].ToolCallID != "call_1" || msgs[2].Name != "getUserData" {
		t.Errorf("tool message lost correlation fields: %+v", msgs[2])
	}
}

func TestTranscript_MessagesReturnsCopy(t *testing.T) {
	tr := memory.NewTranscript("sys")
	tr.Append(provider.NewUserMessage("hello"))

	snap := tr.Messages()
	snap[0] = provider.NewUserMessage("mutated")
	tr.Append(provider.NewUserMessage("later"))

	if got := tr.Messages()[0]; got.Role != provider.RoleSystem {
		t.Fatalf("snapshot mutation leaked into transcript: %+v", got)
	}
	if len(snap) != 2 {
		t.Fatalf("snapshot should not grow with transcript: %d", len(snap))
	}
}

func TestTranscript_ResetKeepsSystemOnly(t *testing.T) {
	tr := memory.NewTranscript("sys")
	tr.Append(provider.NewUserMessage("a"))
	tr.Append(provider.NewUserMessage("b"))
	tr.Reset()

	msgs := tr.Messages()
	if len(msgs) != 1 || msgs[0].Role != provider.RoleSystem {
		t.Fatalf("reset should keep only the system message, got %+v", msgs)
	}
}

func TestTranscript_SaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "transcript.json")

	tr := memory.NewTranscript("sys")
	tr.Append(provider.NewUserMessage("hi"))
	tr.Append(provider.NewToolMessage("call_9", "getRepositoryData", `[{"name":"repo1"}]`))

	if err := memory.SaveTranscript(p, tr.Messages()); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := memory.LoadTranscript(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("length mismatch: got %d want 3", len(out))
	}
	if out[2].ToolCallID != "call_9" || out[2].Name != "getRepositoryData" || out[2].Text() != `[{"name":"repo1"}]` {
		t.Fatalf("tool message did not survive round trip: %+v", out[2])
	}
}

func TestTranscript_LoadMissing_ReturnsNil(t *testing.T) {
	p := filepath.Join(t.TempDir(), "does-not-exist.json")
	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Fatalf("expected missing file in tempdir")
	}
	msgs, err := memory.LoadTranscript(p)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if msgs != nil {
		t.Fatalf("expected nil slice for missing file, got %#v", msgs)
	}
}

func TestTranscript_LoadInvalidJSON_ReturnsError(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(p, []byte("{oops"), 0o664); err != nil {
		t.Fatalf("prep: %v", err)
	}
	if _, err := memory.LoadTranscript(p); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}
