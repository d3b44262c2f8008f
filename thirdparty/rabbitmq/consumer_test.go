package rabbitmq

import (
	"context"
	"errors"
	"testing"

	mailermocks "github.com/muhammadheryan/bhrc-portal/mocks/thirdparty/mailer"
	"github.com/muhammadheryan/bhrc-portal/thirdparty/mailer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHandle(t *testing.T) {
	valid := []byte(`{"to":"a@example.org","subject":"Hello","body":"<p>hi</p>"}`)
	tests := []struct {
		name        string
		body        []byte
		redelivered bool
		sendErr     error
		send        bool
		want        Outcome
	}{
		{name: "sent", body: valid, send: true, want: Ack},
		{name: "malformed json", body: []byte(`{"to":`), want: Drop},
		{name: "missing recipient", body: []byte(`{"subject":"x"}`), want: Drop},
		{name: "first failure requeues", body: valid, send: true, sendErr: errors.New("smtp down"), want: Requeue},
		{name: "second failure drops", body: valid, redelivered: true, send: true, sendErr: errors.New("smtp down"), want: Drop},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			sender := mailermocks.NewSender(t)
			if tt.send {
				sender.On("Send", mock.Anything, mailer.Message{To: "a@example.org", Subject: "Hello", Body: "<p>hi</p>"}).
					Return(tt.sendErr).Once()
			}
			assert.Equal(t, tt.want, Handle(context.Background(), sender, tt.body, tt.redelivered))
		})
	}
}
