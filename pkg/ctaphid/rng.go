package ctaphid

import "crypto/rand"

// ChannelIDGenerator allocates fresh channel identifiers for CTAPHID_INIT
// requests. Production use should be cryptographically strong; tests
// supply a scripted sequence instead.
type ChannelIDGenerator interface {
	Generate() (ChannelID, error)
}

// CryptoRandChannelIDGenerator generates channel ids from crypto/rand.
type CryptoRandChannelIDGenerator struct{}

func (CryptoRandChannelIDGenerator) Generate() (ChannelID, error) {
	var cid ChannelID
	if _, err := rand.Read(cid[:]); err != nil {
		return ChannelID{}, err
	}
	return cid, nil
}

// ScriptedChannelIDGenerator returns a fixed sequence of channel ids, for
// deterministic tests. Generate panics once the sequence is exhausted,
// since a test that runs out of scripted ids has a bug, not a runtime
// condition to recover from.
type ScriptedChannelIDGenerator struct {
	ids []ChannelID
	n   int
}

func NewScriptedChannelIDGenerator(ids ...ChannelID) *ScriptedChannelIDGenerator {
	return &ScriptedChannelIDGenerator{ids: ids}
}

func (s *ScriptedChannelIDGenerator) Generate() (ChannelID, error) {
	if s.n >= len(s.ids) {
		panic("ctaphid: ScriptedChannelIDGenerator exhausted")
	}
	id := s.ids[s.n]
	s.n++
	return id, nil
}
