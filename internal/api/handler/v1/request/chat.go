package request

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/domain"
	"github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/pkg/chatid"
)

var (
	ErrMissingUsernameOrText = errors.New("username and text are required")
	ErrNegativeTimeout       = errors.New("timeout must not be negative")
	ErrTimeoutTooLarge       = errors.New("timeout is too large")
)

type CreateChatRequest struct {
	Username string `json:"username" example:"alice"`
	Text     string `json:"text" example:"hi"`
	Timeout  int64  `json:"timeout" example:"60"` // seconds, 0 means 60
}

func (req *CreateChatRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Required),
		validation.Field(&req.Text, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMissingUsernameOrText, err)
	}

	err = validation.ValidateStruct(
		req,
		validation.Field(&req.Timeout, validation.Min(0)),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNegativeTimeout, err)
	}

	err = validation.ValidateStruct(
		req,
		validation.Field(&req.Timeout, validation.Max(int64(domain.MaxTimeout))),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTimeoutTooLarge, err)
	}

	return nil
}

type GetChatRequest struct {
	ID string `uri:"id"`
}

func (req *GetChatRequest) Validate(ids *chatid.Validator) error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ID, validation.Required, ids.Rule()),
	)
}

type GetUserChatsRequest struct {
	Username string `uri:"username"`
}

func (req *GetUserChatsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Required),
	)
}
