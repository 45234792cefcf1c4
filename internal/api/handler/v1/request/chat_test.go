package request

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/domain"
	"github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/pkg/chatid"
)

func TestCreateChatRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateChatRequest
		wantErr error
	}{
		{"valid", CreateChatRequest{Username: "alice", Text: "hi", Timeout: 5}, nil},
		{"valid without timeout", CreateChatRequest{Username: "alice", Text: "hi"}, nil},
		{"missing username", CreateChatRequest{Text: "hi"}, ErrMissingUsernameOrText},
		{"missing text", CreateChatRequest{Username: "alice"}, ErrMissingUsernameOrText},
		{"missing both", CreateChatRequest{Timeout: -1}, ErrMissingUsernameOrText},
		{"negative timeout", CreateChatRequest{Username: "alice", Text: "hi", Timeout: -1}, ErrNegativeTimeout},
		{"max timeout", CreateChatRequest{Username: "alice", Text: "hi", Timeout: domain.MaxTimeout}, nil},
		{"timeout above max", CreateChatRequest{Username: "alice", Text: "hi", Timeout: domain.MaxTimeout + 1}, ErrTimeoutTooLarge},
		{"timeout overflowing milliseconds", CreateChatRequest{Username: "alice", Text: "hi", Timeout: 9223372036854775}, ErrTimeoutTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetChatRequest_Validate(t *testing.T) {
	strict := chatid.NewValidator(true)
	loose := chatid.NewValidator(false)

	tests := []struct {
		name    string
		id      string
		ids     *chatid.Validator
		wantErr bool
	}{
		{"strict valid", "65f1a2b3c4d5e6f7a8b9c0d1", strict, false},
		{"strict too short", "abc", strict, true},
		{"strict with suffix", "65f1a2b3c4d5e6f7a8b9c0d1-x", strict, true},
		{"loose with suffix", "65f1a2b3c4d5e6f7a8b9c0d1-x", loose, false},
		{"loose too short", "abc", loose, true},
		{"empty", "", strict, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := GetChatRequest{ID: tt.id}
			err := req.Validate(tt.ids)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetUserChatsRequest_Validate(t *testing.T) {
	assert.NoError(t, (&GetUserChatsRequest{Username: "alice"}).Validate())
	assert.Error(t, (&GetUserChatsRequest{}).Validate())
}
