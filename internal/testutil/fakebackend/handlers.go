package fakebackend

import (
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/gameclient/internal/scoring"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const accountKey = "account"

func (b *Backend) router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", b.register)
		auth.POST("/login", b.login)
		auth.POST("/refresh", b.refreshTokens)
		auth.POST("/logout", b.logout)
		auth.GET("/me", b.authenticate, b.me)
	}

	api.GET("/wallet/balance", b.authenticate, b.balance)
	api.POST("/tournaments/:id/score", b.authenticate, b.submitScore)

	return r
}

func ok(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"data": data})
}

func fail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"message": msg})
}

type userView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func view(a *account) userView {
	return userView{ID: a.ID, Username: a.Username, Email: a.Email}
}

func (b *Backend) authenticate(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		fail(c, http.StatusUnauthorized, "Missing bearer token")
		return
	}

	b.mu.Lock()
	id, valid := b.access[token]
	var a *account
	if valid {
		a = b.accountByID(id)
	}
	b.mu.Unlock()

	if a == nil {
		fail(c, http.StatusUnauthorized, "Token expired")
		return
	}
	c.Set(accountKey, a)
	c.Next()
}

func current(c *gin.Context) *account {
	return c.MustGet(accountKey).(*account)
}

func (b *Backend) register(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.accounts[req.Email]; exists {
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}
	b.addUserLocked(req.Username, req.Email, req.Password, decimal.Zero)
	a := b.accounts[req.Email]
	access, refresh := b.issueLocked(a)
	ok(c, http.StatusCreated, gin.H{"user": view(a), "accessToken": access, "refreshToken": refresh})
}

func (b *Backend) login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	a, exists := b.accounts[req.Email]
	if !exists || a.Password != req.Password {
		fail(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	access, refresh := b.issueLocked(a)
	ok(c, http.StatusOK, gin.H{"user": view(a), "accessToken": access, "refreshToken": refresh})
}

func (b *Backend) refreshTokens(c *gin.Context) {
	b.RefreshCalls.Add(1)
	if d := time.Duration(b.refreshDelay.Load()); d > 0 {
		time.Sleep(d)
	}

	var req struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	id, valid := b.refresh[req.RefreshToken]
	if !valid || b.RejectRefresh.Load() {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}
	delete(b.refresh, req.RefreshToken)

	a := b.accountByID(id)
	access, refresh := b.issueLocked(a)
	ok(c, http.StatusOK, gin.H{"accessToken": access, "refreshToken": refresh})
}

func (b *Backend) logout(c *gin.Context) {
	b.LogoutCalls.Add(1)

	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	_ = c.ShouldBindJSON(&req)

	b.mu.Lock()
	delete(b.refresh, req.RefreshToken)
	if token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); found {
		delete(b.access, token)
	}
	b.mu.Unlock()

	c.Status(http.StatusNoContent)
}

func (b *Backend) me(c *gin.Context) {
	ok(c, http.StatusOK, view(current(c)))
}

func (b *Backend) balance(c *gin.Context) {
	b.mu.Lock()
	amount := current(c).Balance
	b.mu.Unlock()
	ok(c, http.StatusOK, gin.H{"balance": amount, "currency": "GEM"})
}

func (b *Backend) submitScore(c *gin.Context) {
	b.ScoreCalls.Add(1)

	var req struct {
		Score     *float64       `json:"score" binding:"required"`
		Signature string         `json:"signature" binding:"required"`
		MatchID   string         `json:"matchId" binding:"required"`
		Timestamp int64          `json:"timestamp" binding:"required"`
		Nonce     string         `json:"nonce" binding:"required"`
		Duration  *float64       `json:"duration"`
		Metadata  map[string]any `json:"metadata"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request")
		return
	}

	tournamentID := c.Param("id")

	b.mu.Lock()
	defer b.mu.Unlock()

	gameID, exists := b.tournaments[tournamentID]
	if !exists {
		fail(c, http.StatusNotFound, "Tournament not found")
		return
	}
	if !b.signer.CheckTimestamp(req.Timestamp) {
		fail(c, http.StatusBadRequest, "Timestamp out of range")
		return
	}
	if _, used := b.nonces[req.Nonce]; used {
		fail(c, http.StatusConflict, "Nonce already used")
		return
	}

	res := b.signer.Verify(scoring.SignedScore{
		Payload: scoring.Payload{
			GameID:    gameID,
			MatchID:   req.MatchID,
			Score:     *req.Score,
			Duration:  req.Duration,
			Timestamp: req.Timestamp,
			Nonce:     req.Nonce,
		},
		Signature: req.Signature,
	})
	if !res.Valid {
		fail(c, http.StatusBadRequest, res.Error)
		return
	}

	b.nonces[req.Nonce] = struct{}{}
	b.scores[tournamentID] = append(b.scores[tournamentID], *req.Score)

	rank := 1
	for _, s := range b.scores[tournamentID] {
		if s > *req.Score {
			rank++
		}
	}

	ok(c, http.StatusCreated, gin.H{
		"id":           uuid.NewString(),
		"tournamentId": tournamentID,
		"score":        *req.Score,
		"rank":         rank,
		"acceptedAt":   time.Now().UTC(),
	})
}
