package v1

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/api/handler/v1/request"
	"github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/api/handler/v1/response"
	"github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/config"
	"github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/domain"
	"github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/pkg/chatid"
	"github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/service"
)

const (
	msgCreateRequest    = "Request must contain username {string} and text {string}."
	msgNegativeTimeout  = "Request timeout must be a non-negative number of seconds {number}."
	msgTimeoutTooLarge  = "Request timeout must not exceed 315360000 seconds {number}."
	msgParseError       = "Error parsing HTTP request."
	msgCreateError      = "Error creating chat."
	msgGetChatRequest   = "Request must contain 24-character hexademical id {string}."
	msgGetChatError     = "Error retrieving chat."
	msgChatNotFound     = "Chat not found."
	msgUserChatsRequest = "Request must contain username {string}."
	msgRetrieveChats    = "Error retrieving chats."
	msgUpdateChats      = "Error updating chats."
)

type ChatService interface {
	CreateChat(ctx context.Context, username, text string, timeout int64) (domain.Chat, error)
	GetChat(ctx context.Context, id string) (domain.Chat, error)
	GetUserChats(ctx context.Context, username string) ([]domain.Chat, error)
}

type ChatHandler struct {
	svc    ChatService
	ids    *chatid.Validator
	status statusPolicy
}

func NewChatHandler(conf *config.APIConfig, svc ChatService) *ChatHandler {
	return &ChatHandler{
		svc:    svc,
		ids:    chatid.NewValidator(conf.StrictChatID),
		status: statusPolicy{legacy: conf.LegacyStatus},
	}
}

// HandleCreateChat godoc
// @Summary      Create a chat
// @Description  Stores a chat that expires timeout seconds (default 60) after creation.
// @Tags         chats
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateChatRequest  true  "Chat"
// @Success      201    {object}  response.CreateChatResponse
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /chat [post]
func (h *ChatHandler) HandleCreateChat(ctx *gin.Context) {
	var req request.CreateChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.NewErr(h.status.malformedBody(), msgParseError, err))
		return
	}

	if err := req.Validate(); err != nil {
		msg := msgCreateRequest
		switch {
		case errors.Is(err, request.ErrNegativeTimeout):
			msg = msgNegativeTimeout
		case errors.Is(err, request.ErrTimeoutTooLarge):
			msg = msgTimeoutTooLarge
		}

		response.RenderErr(ctx, response.ErrBadRequest(msg, err))
		return
	}

	chat, err := h.svc.CreateChat(ctx.Request.Context(), req.Username, req.Text, req.Timeout)
	if err != nil {
		if errors.Is(err, service.ErrTimeoutTooLarge) {
			response.RenderErr(ctx, response.ErrBadRequest(msgTimeoutTooLarge, err))
			return
		}

		err = fmt.Errorf("v1.HandleCreateChat -> h.svc.CreateChat -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(msgCreateError, err))
		return
	}

	response.Render(ctx, h.status.created(), response.CreateChatResponse{ID: chat.ID})
}

// HandleGetChat godoc
// @Summary      Get a chat
// @Description  Returns one chat by its 24-character hexadecimal id.
// @Tags         chats
// @Produce      json
// @Param        id   path      string  true  "Chat ID"
// @Success      201  {object}  response.ChatResponse  "200 when legacy status codes are disabled"
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      501  {object}  response.Err
// @Router       /chat/{id} [get]
func (h *ChatHandler) HandleGetChat(ctx *gin.Context) {
	req := request.GetChatRequest{ID: ctx.Param("id")}
	if err := req.Validate(h.ids); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(msgGetChatRequest, err))
		return
	}

	chat, err := h.svc.GetChat(ctx.Request.Context(), req.ID)
	if err != nil {
		if errors.Is(err, service.ErrChatNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(msgChatNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleGetChat -> h.svc.GetChat -> %w", err)
		response.RenderErr(ctx, response.ErrStore(h.status.readFailure(), msgGetChatError, err))
		return
	}

	response.Render(ctx, h.status.read(), response.NewChatResponse(chat))
}

// HandleGetUserChats godoc
// @Summary      Get and expire the chats of a user
// @Description  Returns every chat of username and marks all of them as expired. Served at /chats/{username}, not /chat/{username}, because /chat/{id} already takes that path.
// @Tags         chats
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      201       {array}   response.UserChatResponse  "200 when legacy status codes are disabled"
// @Failure      400       {object}  response.Err
// @Failure      501       {object}  response.Err
// @Router       /chats/{username} [get]
func (h *ChatHandler) HandleGetUserChats(ctx *gin.Context) {
	req := request.GetUserChatsRequest{Username: ctx.Param("username")}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(msgUserChatsRequest, err))
		return
	}

	chats, err := h.svc.GetUserChats(ctx.Request.Context(), req.Username)
	if err != nil {
		msg := msgRetrieveChats
		if errors.Is(err, service.ErrUpdateChats) {
			msg = msgUpdateChats
		}

		err = fmt.Errorf("v1.HandleGetUserChats -> h.svc.GetUserChats -> %w", err)
		response.RenderErr(ctx, response.ErrStore(h.status.readFailure(), msg, err))
		return
	}

	response.Render(ctx, h.status.read(), response.NewUserChatsResponse(chats))
}
