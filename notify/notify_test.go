package notify

import "testing"

func TestNoOpNeverErrors(t *testing.T) {
	var n Notifier = NoOp{}
	if err := n.Notify("someone@example.com", "done"); err != nil {
		t.Errorf("NoOp.Notify returned %v, want nil", err)
	}
}

func TestXMPPRejectsIncompleteConfig(t *testing.T) {
	x := XMPP{Config: XMPPConfig{JID: "bot@example.com"}}
	if err := x.Notify("", "hi"); err == nil {
		t.Error("expected an error with missing password/to")
	}
}

func TestServerNameFromJID(t *testing.T) {
	if got := serverName("bot@example.com"); got != "example.com" {
		t.Errorf("serverName = %q, want example.com", got)
	}
	if got := serverName("not-a-jid"); got != "" {
		t.Errorf("serverName(%q) = %q, want empty", "not-a-jid", got)
	}
}
