package response

import "github.com/yizeng/gab/gin/mongo/ephemeral-chat/internal/domain"

type CreateChatResponse struct {
	ID string `json:"id" example:"65f1a2b3c4d5e6f7a8b9c0d1"`
}

type ChatResponse struct {
	Username       string `json:"username" example:"alice"`
	Text           string `json:"text" example:"hi"`
	ExpirationDate int64  `json:"expiration_date" example:"1709294405000"`
}

func NewChatResponse(c domain.Chat) ChatResponse {
	return ChatResponse{
		Username:       c.Username,
		Text:           c.Text,
		ExpirationDate: c.ExpirationDate,
	}
}

type UserChatResponse struct {
	ID   string `json:"id" example:"65f1a2b3c4d5e6f7a8b9c0d1"`
	Text string `json:"text" example:"hi"`
}

func NewUserChatsResponse(chats []domain.Chat) []UserChatResponse {
	resp := make([]UserChatResponse, 0, len(chats))
	for _, c := range chats {
		resp = append(resp, UserChatResponse{ID: c.ID, Text: c.Text})
	}

	return resp
}
