// Buffer-Edit-Modul: Bearbeitungs- und Cursorfunktionen fuer den Suchpuffer
// Jede Funktion meldet, ob sich Inhalt oder Cursor geaendert haben.

package readline

// Add fuegt r an der Cursorposition ein und rueckt den Cursor vor
func (b *Buffer) Add(r rune) {
	if b.Pos == b.Buf.Size() {
		b.Buf.Add(r)
	} else {
		b.Buf.Insert(b.Pos, r)
	}
	b.Pos++
}

// Remove loescht das Zeichen vor dem Cursor (Backspace).
// Am Anfang des Puffers passiert nichts.
func (b *Buffer) Remove() bool {
	if b.Pos == 0 || b.Buf.Size() == 0 {
		return false
	}
	b.Pos--
	b.Buf.Remove(b.Pos)
	return true
}

func (b *Buffer) MoveLeft() bool {
	if b.Pos == 0 {
		return false
	}
	b.Pos--
	return true
}

func (b *Buffer) MoveRight() bool {
	if b.Pos >= b.Buf.Size() {
		return false
	}
	b.Pos++
	return true
}
