package booker

import "sync"

// Channel канал загрузки данных
type Channel string

const (
	ChannelMonth Channel = "month"
	ChannelDay   Channel = "day"
	ChannelWeek  Channel = "week"
)

// Ticket номер запроса в канале
type Ticket struct {
	Channel Channel
	Seq     uint64
}

// Sequencer отбрасывает устаревшие ответы: ответ применяется,
// только если после его запроса в том же канале не было нового
type Sequencer struct {
	mu      sync.Mutex
	current map[Channel]uint64
}

// NewSequencer создает новый Sequencer
func NewSequencer() *Sequencer {
	return &Sequencer{current: make(map[Channel]uint64)}
}

// Next выдает билет для нового запроса, делая все предыдущие билеты канала устаревшими
func (s *Sequencer) Next(ch Channel) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current[ch]++
	return Ticket{Channel: ch, Seq: s.current[ch]}
}

// IsCurrent возвращает true, если билет последний в своем канале
func (s *Sequencer) IsCurrent(t Ticket) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current[t.Channel] == t.Seq
}
