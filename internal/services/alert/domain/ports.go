package domain

import "context"

// NotifierPort delivers spam alerts. Best effort: implementations absorb
// transport failures and report them through observability, never to callers
type NotifierPort interface {
	Notify(ctx context.Context, a Alert)
}
