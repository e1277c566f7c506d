// Buffer-Modul: Hauptstruktur und Basis-Funktionen
// Dieses Modul verwaltet den Suchbegriff als Rune-Liste mit Cursor.
// Siehe auch: buffer_edit.go

package readline

import (
	"github.com/emirpasic/gods/v2/lists/arraylist"
)

// Buffer haelt den Suchbegriff. Pos zaehlt Zeichen (Runes), nicht Bytes,
// und liegt deshalb immer auf einer Zeichengrenze: 0 <= Pos <= Len().
type Buffer struct {
	Pos int
	Buf *arraylist.List[rune]
}

// NewBuffer erstellt einen Puffer mit initial als Inhalt, Cursor am Ende
func NewBuffer(initial string) *Buffer {
	b := &Buffer{Buf: arraylist.New[rune]()}
	for _, r := range initial {
		b.Buf.Add(r)
	}
	b.Pos = b.Buf.Size()
	return b
}

func (b *Buffer) Len() int {
	return b.Buf.Size()
}

func (b *Buffer) String() string {
	return string(b.Buf.Values())
}

// StringNM gibt die Zeichen im Bereich [n, m) zurueck
func (b *Buffer) StringNM(n, m int) string {
	n = max(0, n)
	m = min(m, b.Buf.Size())
	if n >= m {
		return ""
	}
	return string(b.Buf.Values()[n:m])
}

// BeforeCursor und AfterCursor teilen den Inhalt an der Cursorposition
func (b *Buffer) BeforeCursor() string {
	return b.StringNM(0, b.Pos)
}

func (b *Buffer) AfterCursor() string {
	return b.StringNM(b.Pos, b.Buf.Size())
}
