package cachesync

import "github.com/fortuna/courtside/internal/schedule"

// command is one unit of work for the sync actor. Everything that mutates
// the cache flows through the queue; there is no other write path.
type command interface {
	isCommand()
}

// addCmd starts tracking a player. The actor bumps the player's generation
// and launches the fetch; the result re-enters the queue as a mergeCmd.
type addCmd struct {
	player schedule.TrackedPlayer
	done   chan error
}

// removeCmd stops tracking a player: strip, prune, and invalidate any
// in-flight fetch for them.
type removeCmd struct {
	playerID string
	done     chan error
}

// mergeCmd carries a finished fetch back onto the actor goroutine. gen is
// the generation token captured when the ADD was accepted; the merge is
// discarded if the player's generation has moved on.
type mergeCmd struct {
	player schedule.TrackedPlayer
	gen    uint64
	games  []*schedule.GameRecord
	done   chan error
}

// reloadCmd requests a full schedule reload.
type reloadCmd struct {
	rankingSource string
	done          chan error
}

// applyReloadCmd carries a fetched full schedule back onto the actor.
type applyReloadCmd struct {
	cache schedule.Cache
	done  chan error
}

// tipoffCmd updates tipoff times on matched cached games.
type tipoffCmd struct {
	games []*schedule.GameRecord
	done  chan error
}

func (addCmd) isCommand()         {}
func (removeCmd) isCommand()      {}
func (mergeCmd) isCommand()       {}
func (reloadCmd) isCommand()      {}
func (applyReloadCmd) isCommand() {}
func (tipoffCmd) isCommand()      {}
