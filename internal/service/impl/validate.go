package impl

import (
	"fmt"
	"net/url"
	"regexp"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Decentr-net/socialdistribution/internal/entities"
	"github.com/Decentr-net/socialdistribution/internal/service"
)

var usernameRegex = regexp.MustCompile(`^[\p{L}0-9_]{3,20}$`)

// bcrypt limits input by bytes, not runes.
const (
	minPasswordLen = 6
	maxPasswordLen = 72
)

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", service.ErrInvalidRequest, fmt.Sprintf(format, args...))
}

func checkLength(field, v string, min, max int) error {
	l := utf8.RuneCountInString(v)
	if l < min {
		if min == 1 {
			return invalid("%s is required", field)
		}
		return invalid("%s is too short", field)
	}
	if l > max {
		return invalid("%s is too long", field)
	}

	return nil
}

func checkURL(field, v string) error {
	u, err := url.Parse(v)
	if err != nil || !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return invalid("%s should be an absolute http url", field)
	}

	return nil
}

func validateSignup(p *service.SignupParams) error {
	if !usernameRegex.MatchString(p.Username) {
		return invalid("username should be 3-20 letters, digits or underscores")
	}
	if l := len(p.Password1); l < minPasswordLen || l > maxPasswordLen {
		return invalid("password should be %d-%d bytes", minPasswordLen, maxPasswordLen)
	}
	if p.Password1 != p.Password2 {
		return invalid("passwords do not match")
	}

	return checkGithub(p.Github)
}

func checkGithub(v string) error {
	if err := checkLength("github", v, 0, 200); err != nil {
		return err
	}
	if v == "" {
		return nil
	}

	return checkURL("github", v)
}

func validateAuthor(a *entities.Author) error {
	if err := checkLength("displayName", a.DisplayName, 1, 50); err != nil {
		return err
	}
	if err := checkGithub(a.Github); err != nil {
		return err
	}
	if a.ProfileImage != "" {
		if err := checkURL("profileImage", a.ProfileImage); err != nil {
			return err
		}
	}

	return checkLength("bio", a.Bio, 0, 1000)
}

func validatePost(p *entities.Post) error {
	for _, v := range []struct {
		field    string
		value    string
		min, max int
	}{
		{"title", p.Title, 1, 50},
		{"description", p.Description, 0, 200},
		{"contentType", p.ContentType, 1, 200},
		{"content", p.Content, 1, 600},
		{"categories", p.Categories, 0, 200},
	} {
		if err := checkLength(v.field, v.value, v.min, v.max); err != nil {
			return err
		}
	}

	if !p.Visibility.Valid() {
		return invalid("unknown visibility %q", p.Visibility)
	}

	return nil
}

func validateComment(c *entities.Comment) error {
	if err := checkLength("comment", c.Comment, 1, 600); err != nil {
		return err
	}

	return checkLength("contentType", c.ContentType, 1, 200)
}

func validateFollow(p *service.FollowParams, following uuid.UUID) error {
	if p.Summary == "" {
		return invalid("summary is required")
	}
	if p.Actor == nil || p.Actor.ID == uuid.Nil {
		return invalid("actor is required")
	}
	if p.Object == nil || p.Object.ID != following {
		return invalid("object should be the inbox owner")
	}
	if p.Actor.ID == following {
		return invalid("author can not follow itself")
	}

	return checkLength("summary", p.Summary, 1, 200)
}

func validateNode(n *entities.Node) error {
	if err := checkLength("nodeName", n.Name, 1, 50); err != nil {
		return err
	}
	if err := checkURL("apiURL", n.APIURL); err != nil {
		return err
	}

	return checkLength("host", n.Host, 1, 200)
}
