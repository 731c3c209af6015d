package domain

import "errors"

var (
	ErrNominationsClosed = errors.New("the nomination period is closed")
	ErrAlreadyNominated  = errors.New("candidate is already nominated")
	ErrBotCandidate      = errors.New("bots cannot be nominated")
	ErrVotingClosed      = errors.New("voting is not open")
	ErrNotNominated      = errors.New("candidate is not a nominee")
	ErrVotingInProgress  = errors.New("an election is being voted or tallied")
	ErrVotingNotOpen     = errors.New("there is no open vote to end")
)
