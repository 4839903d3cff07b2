package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinesStripsEnumerationMarkers(t *testing.T) {
	text := "1. 好きな季節は？\n2) 朝型ですか？\n・休日の過ごし方は？\n\n10. 口癖はありますか？"
	assert.Equal(t, []string{
		"好きな季節は？",
		"朝型ですか？",
		"休日の過ごし方は？",
		"口癖はありますか？",
	}, Lines(text))
}

func TestLinesEmptyInput(t *testing.T) {
	assert.Empty(t, Lines(""))
	assert.Empty(t, Lines("  \n\n  "))
}

func TestTrimEnclosing(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"kagikakko", "「こんにちは、山田です」", "こんにちは、山田です"},
		{"double quotes", `"Hello there"`, "Hello there"},
		{"parens", "（自己紹介します）", "自己紹介します"},
		{"inner pair stays", "「山田」と「田中」", "「山田」と「田中」"},
		{"only outer pair trimmed once", "「「二重」」", "「「二重」」"},
		{"unbalanced", "「開きだけ", "「開きだけ"},
		{"plain text", "こんにちは", "こんにちは"},
		{"surrounding space", "  「はい」  ", "はい"},
		{"single rune", "「", "「"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TrimEnclosing(tt.in))
		})
	}
}
