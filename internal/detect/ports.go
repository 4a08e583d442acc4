package detect

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Matcher turns one block into zero or more signals. Implementations are pure.
//
//counterfeiter:generate -o fake -fake-name Matcher . Matcher
type Matcher interface {
	Name() string
	Match(block Block) []Signal
}
