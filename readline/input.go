// Package readline - Input-Verarbeitungsmodul
//
// Dieses Modul uebersetzt rohe Terminal-Bytes in logische Tastenereignisse.
//
// Hauptkomponenten:
// - Decoder: liest genau ein Ereignis pro Aufruf
// - readEscape/readCSI: Escape- und CSI-Sequenzen (Pfeiltasten, Shift+Tab)

package readline

import (
	"bufio"
	"io"
	"unicode"
	"unicode/utf8"
)

// Decoder liest Tastenereignisse von einem Raw-Mode-Terminal
type Decoder struct {
	reader *bufio.Reader
}

// NewDecoder erstellt einen Decoder fuer r
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{reader: bufio.NewReader(r)}
}

// ReadKey blockiert bis ein vollstaendiges Ereignis gelesen wurde.
// Lesefehler (auch io.EOF) werden unveraendert zurueckgegeben.
func (d *Decoder) ReadKey() (Event, error) {
	r, size, err := d.reader.ReadRune()
	if err != nil {
		return Event{}, err
	}

	if r == utf8.RuneError && size == 1 {
		return Event{Key: KeyOther}, nil
	}

	switch r {
	case CharEnter, CharCtrlJ:
		return Event{Key: KeyEnter}, nil
	case CharBackspace, CharCtrlH:
		return Event{Key: KeyBackspace}, nil
	case CharTab:
		return Event{Key: KeyTab}, nil
	case CharInterrupt:
		return Event{Key: KeyEscape}, nil
	case CharEsc:
		// Ein einzelnes ESC ohne gepufferte Folgebytes ist die Escape-Taste
		if d.reader.Buffered() == 0 {
			return Event{Key: KeyEscape}, nil
		}
		return d.readEscape()
	}

	if r < CharSpace || unicode.IsControl(r) {
		return Event{Key: KeyOther}, nil
	}

	return Event{Key: KeyChar, Rune: r}, nil
}

// readEscape verarbeitet die Bytes nach einem ESC
func (d *Decoder) readEscape() (Event, error) {
	b, err := d.reader.ReadByte()
	if err != nil {
		return Event{}, err
	}

	switch b {
	case '[':
		return d.readCSI(true)
	case 'O':
		return d.readCSI(false)
	}

	// Alt+Zeichen: Mehrbyte-Runen vollstaendig verbrauchen
	if b >= utf8.RuneSelf {
		if err := d.reader.UnreadByte(); err != nil {
			return Event{}, err
		}
		if _, _, err := d.reader.ReadRune(); err != nil {
			return Event{}, err
		}
	}
	return Event{Key: KeyOther}, nil
}

// readCSI liest Parameter bis zum Final-Byte (0x40-0x7E).
// Nur parameterlose Sequenzen werden auf Tasten abgebildet.
func (d *Decoder) readCSI(csi bool) (Event, error) {
	var params int
	for {
		c, err := d.reader.ReadByte()
		if err != nil {
			return Event{}, err
		}
		if c < 0x40 || c > 0x7e {
			params++
			continue
		}

		if params > 0 {
			return Event{Key: KeyOther}, nil
		}

		switch c {
		case 'A':
			return Event{Key: KeyUp}, nil
		case 'B':
			return Event{Key: KeyDown}, nil
		case 'C':
			return Event{Key: KeyRight}, nil
		case 'D':
			return Event{Key: KeyLeft}, nil
		case 'Z':
			if csi {
				return Event{Key: KeyBackTab}, nil
			}
		}
		return Event{Key: KeyOther}, nil
	}
}
