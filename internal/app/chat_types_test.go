package app

import "testing"

func TestChatTypeRegistryCovered(t *testing.T) {
	// Every known type must be classified explicitly; a type missing from
	// the registry would silently default to multi-turn.
	for _, chatType := range AllChatTypes {
		if _, ok := singleTurn[chatType]; !ok {
			t.Errorf("chat type %q has no turn classification", chatType)
		}
	}
	if len(singleTurn) != len(AllChatTypes) {
		t.Fatalf("registry has %d entries for %d types", len(singleTurn), len(AllChatTypes))
	}
}

func TestIsSingleTurn(t *testing.T) {
	cases := map[ChatType]bool{
		TypeStory:       true,
		TypeRagStory:    true,
		TypeVideoStatic: true,
		TypeVideoFluid:  true,
		TypeHistoryBot:  false,
	}
	for chatType, want := range cases {
		if got := IsSingleTurn(chatType); got != want {
			t.Errorf("IsSingleTurn(%q) = %v, want %v", chatType, got, want)
		}
	}
}

func TestParseChatType(t *testing.T) {
	if got, ok := ParseChatType("story generation"); !ok || got != TypeStory {
		t.Fatalf("case-insensitive parse failed: %q %v", got, ok)
	}
	if got, ok := ParseChatType("  History ChatBot  "); !ok || got != TypeHistoryBot {
		t.Fatalf("trimmed parse failed: %q %v", got, ok)
	}
	if _, ok := ParseChatType("Poetry Generation"); ok {
		t.Fatal("unknown type must not parse")
	}
}
