package models

type Section struct {
	Name   string
	Lines  []string
	Inline bool
}

// DisplayDocument не зависит от способа отображения: клиент Telegram сам решает, как его отрисовать.
type DisplayDocument struct {
	Title    string
	Sections []Section
	Footer   string
}

func (d *DisplayDocument) AddSection(name string, inline bool, lines ...string) {
	d.Sections = append(d.Sections, Section{
		Name:   name,
		Lines:  lines,
		Inline: inline,
	})
}

func (d *DisplayDocument) Section(name string) (Section, bool) {
	for _, s := range d.Sections {
		if s.Name == name {
			return s, true
		}
	}

	return Section{}, false
}

type DisplayHandle struct {
	ChatID    int64
	MessageID int
}

type Direction int

const (
	DirectionPrevious Direction = -1
	DirectionNext     Direction = 1
)

func (d Direction) String() string {
	if d == DirectionPrevious {
		return "previous"
	}

	return "next"
}

type Navigation struct {
	CallbackID string
	Handle     DisplayHandle
	Direction  Direction
	UserID     int64
	Text       string
}
