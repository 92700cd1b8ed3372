// Package nav defines the callback token grammar carried by inline
// buttons. A token is the verb plus pipe-separated arguments, and it holds
// the complete navigation state: decoding one is enough to render the next
// screen, so buttons survive process restarts and are safely re-clickable.
//
// Argument values must not contain the pipe; catalog fields satisfy this
// because the upload caption parser rejects extra fields.
package nav

import (
	"fmt"
	"strconv"
	"strings"
)

const sep = "|"

// Action is one decoded button press. Handlers switch on the concrete
// type; the string form never leaves the transport boundary.
type Action interface {
	Encode() string
}

type Home struct{}

type Class struct {
	Grade string
}

type Category struct {
	Grade    string
	Category string
}

type Subject struct {
	Grade    string
	Category string
	Subject  string
}

type Chapter struct {
	Grade    string
	Category string
	Subject  string
	Chapter  string
}

type Page struct {
	Grade    string
	Category string
	Subject  string
	Chapter  string
	Index    int
}

type SendRange struct {
	Grade    string
	Category string
	Subject  string
	Chapter  string
	Start    int
	Count    int
}

type Buy struct{}

type Redeem struct{}

type Plan struct {
	Key string
}

func (Home) Encode() string { return "home" }

func (a Class) Encode() string { return join("class", a.Grade) }

func (a Category) Encode() string { return join("cat", a.Grade, a.Category) }

func (a Subject) Encode() string { return join("sub", a.Grade, a.Category, a.Subject) }

func (a Chapter) Encode() string {
	return join("chap", a.Grade, a.Category, a.Subject, a.Chapter)
}

func (a Page) Encode() string {
	return join("page", a.Grade, a.Category, a.Subject, a.Chapter, strconv.Itoa(a.Index))
}

func (a SendRange) Encode() string {
	return join("sendrange", a.Grade, a.Category, a.Subject, a.Chapter, strconv.Itoa(a.Start), strconv.Itoa(a.Count))
}

func (Buy) Encode() string { return "buy" }

func (Redeem) Encode() string { return "redeem" }

func (a Plan) Encode() string { return join("plan", a.Key) }

func join(verb string, args ...string) string {
	return verb + sep + strings.Join(args, sep)
}

// Decode parses a callback token back into its Action.
func Decode(data string) (Action, error) {
	parts := strings.Split(strings.TrimSpace(data), sep)
	verb := parts[0]
	args := parts[1:]

	switch verb {
	case "home":
		if err := arity(verb, args, 0); err != nil {
			return nil, err
		}
		return Home{}, nil
	case "class":
		if err := arity(verb, args, 1); err != nil {
			return nil, err
		}
		return Class{Grade: args[0]}, nil
	case "cat":
		if err := arity(verb, args, 2); err != nil {
			return nil, err
		}
		return Category{Grade: args[0], Category: args[1]}, nil
	case "sub":
		if err := arity(verb, args, 3); err != nil {
			return nil, err
		}
		return Subject{Grade: args[0], Category: args[1], Subject: args[2]}, nil
	case "chap":
		if err := arity(verb, args, 4); err != nil {
			return nil, err
		}
		return Chapter{Grade: args[0], Category: args[1], Subject: args[2], Chapter: args[3]}, nil
	case "page":
		if err := arity(verb, args, 5); err != nil {
			return nil, err
		}
		index, err := strconv.Atoi(args[4])
		if err != nil {
			return nil, fmt.Errorf("page token: bad index %q", args[4])
		}
		return Page{Grade: args[0], Category: args[1], Subject: args[2], Chapter: args[3], Index: index}, nil
	case "sendrange":
		if err := arity(verb, args, 6); err != nil {
			return nil, err
		}
		start, err := strconv.Atoi(args[4])
		if err != nil {
			return nil, fmt.Errorf("sendrange token: bad start %q", args[4])
		}
		count, err := strconv.Atoi(args[5])
		if err != nil {
			return nil, fmt.Errorf("sendrange token: bad count %q", args[5])
		}
		return SendRange{Grade: args[0], Category: args[1], Subject: args[2], Chapter: args[3], Start: start, Count: count}, nil
	case "buy":
		if err := arity(verb, args, 0); err != nil {
			return nil, err
		}
		return Buy{}, nil
	case "redeem":
		if err := arity(verb, args, 0); err != nil {
			return nil, err
		}
		return Redeem{}, nil
	case "plan":
		if err := arity(verb, args, 1); err != nil {
			return nil, err
		}
		return Plan{Key: args[0]}, nil
	default:
		return nil, fmt.Errorf("unknown callback verb %q", verb)
	}
}

func arity(verb string, args []string, want int) error {
	if len(args) != want {
		return fmt.Errorf("%s token: want %d args, got %d", verb, want, len(args))
	}
	return nil
}
