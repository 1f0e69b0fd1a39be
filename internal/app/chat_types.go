package app

import "strings"

// ChatType is the backend's chat classification. The wire values are the
// display strings the backend stores on each chat; they never change after a
// chat is created.
type ChatType string

const (
	TypeStory       ChatType = "Story Generation"
	TypeRagStory    ChatType = "RAG Story Generation"
	TypeVideoStatic ChatType = "Video Generation (Static)"
	TypeVideoFluid  ChatType = "Video Generation (Fluid)"
	TypeHistoryBot  ChatType = "History ChatBot"
)

// AllChatTypes lists every known type in dashboard order.
var AllChatTypes = []ChatType{
	TypeStory,
	TypeRagStory,
	TypeVideoStatic,
	TypeVideoFluid,
	TypeHistoryBot,
}

// singleTurn classifies every known chat type. A chat of a single-turn type
// permits exactly one question/answer exchange and is terminal afterwards;
// History ChatBot is the only unbounded type. Every ChatType constant must
// have an entry here; TestChatTypeRegistryCovered enforces it.
var singleTurn = map[ChatType]bool{
	TypeStory:       true,
	TypeRagStory:    true,
	TypeVideoStatic: true,
	TypeVideoFluid:  true,
	TypeHistoryBot:  false,
}

// exportable marks the types whose finished sessions can be downloaded as a
// PDF. Video chats produce a video, not a document.
var exportable = map[ChatType]bool{
	TypeStory:    true,
	TypeRagStory: true,
}

func IsSingleTurn(t ChatType) bool {
	return singleTurn[t]
}

func IsExportableType(t ChatType) bool {
	return exportable[t]
}

func ParseChatType(value string) (ChatType, bool) {
	v := strings.TrimSpace(value)
	for _, t := range AllChatTypes {
		if strings.EqualFold(v, string(t)) {
			return t, true
		}
	}
	return ChatType(""), false
}

// Placeholder returns the Urdu input prompt the dashboard shows for a type.
func Placeholder(t ChatType) string {
	if t == TypeHistoryBot {
		return "تاریخ سے متعلق اپنا سوال پوچھیں"
	}
	return "ایک ایسی کہانی لکھیں...."
}
