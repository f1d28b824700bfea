// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package intake

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/lexfrei/studio-site/internal/contact"
)

// DefaultSubject is the request/reply subject contact requests go to.
const DefaultSubject = "studio.contact.requests"

// Requester is the part of *nats.Conn used by NATS.
type Requester interface {
	RequestWithContext(ctx context.Context, subj string, data []byte) (*nats.Msg, error)
}

// Reply is what the intake service answers.
type Reply struct {
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
}

// NATS sends each request over NATS request/reply.
type NATS struct {
	conn    Requester
	subject string
}

// NewNATS returns a submitter publishing on subject.
func NewNATS(conn Requester, subject string) *NATS {
	if subject == "" {
		subject = DefaultSubject
	}

	return &NATS{conn: conn, subject: subject}
}

// Submit sends req and waits for the reply.
func (n *NATS) Submit(ctx context.Context, req contact.Request) error {
	data, err := json.Marshal(req)
	if err != nil {
		return contact.Transport(fmt.Errorf("encode contact request: %w", err))
	}

	msg, err := n.conn.RequestWithContext(ctx, n.subject, data)
	if err != nil {
		err = fmt.Errorf("request %s: %w", n.subject, err)

		if errors.Is(err, nats.ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
			return contact.Timeout(err)
		}

		return contact.Transport(err)
	}

	var reply Reply
	if err := json.Unmarshal(msg.Data, &reply); err != nil {
		return contact.Transport(fmt.Errorf("decode intake reply: %w", err))
	}

	if !reply.Accepted {
		return contact.Rejected(fmt.Errorf("intake rejected request: %s", reply.Reason))
	}

	return nil
}
