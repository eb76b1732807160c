package notify

import (
	"crypto/tls"
	"fmt"
	"strings"

	"github.com/xmppo/go-xmpp"
	log "github.com/sirupsen/logrus"
)

// XMPPConfig mirrors the teacher's xmpp.Config: credentials for a single
// account this service logs into to send notifications.
type XMPPConfig struct {
	Host     string
	JID      string
	Password string
	To       string
}

// XMPP sends notifications over the XMPP protocol via go-xmpp, logging
// into the configured account fresh for each call, exactly as the
// teacher does — there is no persistent connection to manage.
type XMPP struct {
	Config XMPPConfig
}

// Ready reports whether enough configuration is present to attempt a
// send; cmd/tinysea-server uses this to decide between XMPP and NoOp.
func (x XMPPConfig) Ready() bool {
	return x.JID != "" && x.Password != "" && x.To != ""
}

func serverName(jid string) string {
	parts := strings.SplitN(jid, "@", 2)
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}

// Notify sends message to recipient (or the configured default To, if
// recipient is empty) over a fresh XMPP session.
func (x XMPP) Notify(recipient, message string) error {
	if !x.Config.Ready() {
		return fmt.Errorf("notify: missing xmpp configuration")
	}
	if recipient == "" {
		recipient = x.Config.To
	}

	host := x.Config.Host
	if host == "" {
		host = serverName(x.Config.JID)
	}

	xmpp.DefaultConfig = &tls.Config{InsecureSkipVerify: true}

	options := xmpp.Options{
		Host:     host,
		User:     x.Config.JID,
		Password: x.Config.Password,
		NoTLS:    true,
		StartTLS: true,
		Status:   "xa",
	}

	talk, err := options.NewClient()
	if err != nil {
		log.WithError(err).Error("notify: xmpp connect failed")
		return err
	}

	talk.Send(xmpp.Chat{Remote: recipient, Type: "chat", Text: message})
	return nil
}
