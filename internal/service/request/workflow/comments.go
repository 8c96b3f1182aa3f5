package workflow

import (
	"bytes"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

// MaxCommentLength is the upper bound on comment text, in runes.
const MaxCommentLength = 2000

// CanComment is the comment policy: jig and production threads are limited
// to managers, sample threads are open to everyone.
func CanComment(kind domain.RequestKind, role domain.Role) bool {
	switch kind {
	case domain.RequestKindSample:
		return role.AtLeast(domain.RoleMember)
	default:
		return role.AtLeast(domain.RoleManager)
	}
}

// AddComment appends a new unread comment to req.
func AddComment(req *domain.Request, authorName, text string, canComment bool, at time.Time) (domain.Comment, error) {
	if !canComment {
		return domain.Comment{}, &domain.PermissionError{
			Action:   "comment on " + req.Kind.String(),
			Required: domain.RoleManager,
		}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Comment{}, domain.NewValidationError("text", "required")
	}
	if utf8.RuneCountInString(text) > MaxCommentLength {
		return domain.Comment{}, domain.NewValidationError("text", "max 2000 characters")
	}

	c := domain.Comment{
		ID:         uuid.New(),
		AuthorName: authorName,
		Text:       text,
		CreatedAt:  at,
		ReadBy:     []uuid.UUID{},
	}
	req.Comments = append(req.Comments, c)
	return c, nil
}

func compareUUID(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}

// MarkAllRead adds userID to every comment's ReadBy. It returns the number
// of comments that changed; a second call returns 0. ReadBy stays sorted.
func MarkAllRead(req *domain.Request, userID uuid.UUID) int {
	changed := 0
	for i := range req.Comments {
		c := &req.Comments[i]
		if c.HasRead(userID) {
			continue
		}
		i, _ := slices.BinarySearchFunc(c.ReadBy, userID, compareUUID)
		c.ReadBy = slices.Insert(c.ReadBy, i, userID)
		changed++
	}
	return changed
}

// IsUnread reports whether userID has not read c.
func IsUnread(c domain.Comment, userID uuid.UUID) bool {
	return !c.HasRead(userID)
}

// UnreadCount returns how many comments on req userID has not read.
func UnreadCount(req *domain.Request, userID uuid.UUID) int {
	n := 0
	for _, c := range req.Comments {
		if IsUnread(c, userID) {
			n++
		}
	}
	return n
}
