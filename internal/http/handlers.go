package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yamadaken1/jikoboard/internal/auth"
	"github.com/yamadaken1/jikoboard/internal/board"
	"github.com/yamadaken1/jikoboard/internal/gen"
	"github.com/yamadaken1/jikoboard/internal/prompt"
	"github.com/yamadaken1/jikoboard/internal/ws"
)

const defaultExtraQuestions = 3

// --- Structs for request binding ---

type generateInput struct {
	// Answers is decoded manually so the question order the client sent
	// is preserved; encoding/json maps would scramble it.
	Answers    json.RawMessage `json:"answers"`
	ExtraCount int             `json:"extra_count"`
	Style      string          `json:"style"`
	Name       string          `json:"name"`
}

type createPostInput struct {
	Name  string `json:"name" form:"name"`
	Intro string `json:"intro" form:"intro"`
}

type reactInput struct {
	Reaction string `json:"reaction" binding:"required"`
}

type commentInput struct {
	Text string `json:"text"`
}

// wsMessage is the JSON envelope pushed to board pages.
type wsMessage struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Env carries the handlers' dependencies.
type Env struct {
	Auth  *auth.Service
	Board *board.Service
	Gen   gen.Generator
	Hub   *ws.Hub
}

// --- Generation handlers ---

func (e *Env) SuggestQuestion(c *gin.Context) {
	text, err := e.Gen.Complete(c.Request.Context(), prompt.QuestionSuggestion())
	if err != nil {
		e.generationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"question": gen.TrimEnclosing(text)})
}

func (e *Env) GenerateExtraQuestions(c *gin.Context) {
	var input generateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "リクエストの形式が正しくありません")
		return
	}
	answers, err := decodeAnswers(input.Answers)
	if err != nil {
		badRequest(c, "リクエストの形式が正しくありません")
		return
	}
	count := input.ExtraCount
	if count == 0 {
		count = defaultExtraQuestions
	}
	text, err := e.Gen.Complete(c.Request.Context(), prompt.Followup(answers, count))
	if err != nil {
		e.generationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"extra_questions": gen.Lines(text)})
}

func (e *Env) GenerateIntro(c *gin.Context) {
	var input generateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "リクエストの形式が正しくありません")
		return
	}
	answers, err := decodeAnswers(input.Answers)
	if err != nil {
		badRequest(c, "リクエストの形式が正しくありません")
		return
	}
	text, err := e.Gen.Complete(c.Request.Context(), prompt.Intro(answers, input.Style, input.Name))
	if err != nil {
		e.generationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"introduction": gen.TrimEnclosing(text)})
}

// decodeAnswers walks the answers object token by token, keeping the
// key order of the request body.
func decodeAnswers(raw json.RawMessage) ([]prompt.QA, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("answers must be an object")
	}
	var answers []prompt.QA
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		question, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("answers must be an object")
		}
		var answer string
		if err := dec.Decode(&answer); err != nil {
			return nil, err
		}
		answers = append(answers, prompt.QA{Question: question, Answer: answer})
	}
	return answers, nil
}

// --- Board handlers ---

func (e *Env) ListIntros(c *gin.Context) {
	c.JSON(http.StatusOK, e.Board.ListPosts())
}

func (e *Env) CreatePost(c *gin.Context) {
	var input createPostInput
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c, "リクエストの形式が正しくありません")
		return
	}
	post, err := e.Board.CreatePost(currentUsername(c), input.Name, input.Intro)
	if err != nil {
		e.boardError(c, err)
		return
	}
	e.broadcast(wsMessage{Type: "new_post", Data: post})
	c.JSON(http.StatusCreated, gin.H{"status": "ok", "message": "自己紹介を保存しました"})
}

func (e *Env) React(c *gin.Context) {
	var input reactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "リアクションを指定してください")
		return
	}
	postID := c.Param("id")
	reactions, err := e.Board.ToggleReaction(postID, input.Reaction, currentUsername(c))
	if err != nil {
		e.boardError(c, err)
		return
	}
	e.broadcast(wsMessage{Type: "reaction", Data: gin.H{"id": postID, "reactions": reactions}})
	c.JSON(http.StatusOK, gin.H{"status": "ok", "reactions": reactions})
}

func (e *Env) Comment(c *gin.Context) {
	var input commentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "リクエストの形式が正しくありません")
		return
	}
	postID := c.Param("id")
	comments, err := e.Board.AddComment(postID, currentUsername(c), input.Text)
	if err != nil {
		e.boardError(c, err)
		return
	}
	e.broadcast(wsMessage{Type: "comment", Data: gin.H{"id": postID, "comments": comments}})
	c.JSON(http.StatusOK, gin.H{"status": "ok", "comments": comments})
}

func (e *Env) DeleteIntro(c *gin.Context) {
	postID := c.Param("id")
	if err := e.Board.DeletePost(postID, currentUsername(c)); err != nil {
		e.boardError(c, err)
		return
	}
	e.broadcast(wsMessage{Type: "delete_post", Data: gin.H{"id": postID}})
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "投稿を削除しました"})
}

func (e *Env) DeleteComment(c *gin.Context) {
	postID, commentID := c.Param("id"), c.Param("cid")
	comments, err := e.Board.DeleteComment(postID, commentID, currentUsername(c))
	if err != nil {
		e.boardError(c, err)
		return
	}
	e.broadcast(wsMessage{Type: "delete_comment", Data: gin.H{"id": postID, "comments": comments}})
	c.JSON(http.StatusOK, gin.H{"status": "ok", "comments": comments})
}

// --- Error mapping ---

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": msg})
}

func (e *Env) boardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, board.ErrMissingFields):
		badRequest(c, "名前と自己紹介文を入力してください")
	case errors.Is(err, board.ErrEmptyComment):
		badRequest(c, "コメントを入力してください")
	case errors.Is(err, board.ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "投稿が見つかりません"})
	case errors.Is(err, board.ErrCommentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "コメントが見つかりません"})
	case errors.Is(err, board.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"status": "error", "message": "この操作を行う権限がありません"})
	default:
		log.Printf("board error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "データの保存に失敗しました"})
	}
}

func (e *Env) generationError(c *gin.Context, err error) {
	log.Printf("generation error: %v", err)
	c.JSON(http.StatusBadGateway, gin.H{
		"status":  "error",
		"message": "文章の生成に失敗しました。時間をおいて再度お試しください",
	})
}

func (e *Env) broadcast(msg wsMessage) {
	if e.Hub == nil {
		return
	}
	b, err := json.Marshal(msg)
	if err != nil {
		log.Printf("marshal ws message: %v", err)
		return
	}
	e.Hub.Broadcast <- b
}
