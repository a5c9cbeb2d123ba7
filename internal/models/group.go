package models

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/praxishq/praxis-cli/internal/constants"
)

// Group is a practice circle. The join code is generated client-side but its
// uniqueness is enforced by the database; deleting a group cascades to its
// practices.
type Group struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	JoinCode  string    `json:"join_code"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (g *Group) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return fmt.Errorf("group name cannot be empty")
	}
	if len(g.JoinCode) != constants.JoinCodeLength {
		return fmt.Errorf("join code must be %d characters", constants.JoinCodeLength)
	}
	for _, r := range g.JoinCode {
		if !strings.ContainsRune(constants.JoinCodeAlphabet, r) {
			return fmt.Errorf("join code contains invalid character %q", r)
		}
	}
	if g.OwnerID == "" {
		return fmt.Errorf("group owner cannot be empty")
	}
	return nil
}

// NewJoinCode generates a random join code from the restricted alphabet.
func NewJoinCode() (string, error) {
	code := make([]byte, constants.JoinCodeLength)
	max := big.NewInt(int64(len(constants.JoinCodeAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate join code: %w", err)
		}
		code[i] = constants.JoinCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}

// IsOwnedBy reports whether userID owns the group.
func (g *Group) IsOwnedBy(userID string) bool {
	return userID != "" && g.OwnerID == userID
}

// Membership links a user to a group they joined.
type Membership struct {
	GroupID  string    `json:"group_id"`
	UserID   string    `json:"user_id"`
	JoinedAt time.Time `json:"joined_at"`
}
