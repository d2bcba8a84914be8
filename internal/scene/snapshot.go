package scene

// BlockView is the render-facing copy of a Block.
type BlockView struct {
	Block
	Grabbed bool `json:"grabbed"`
}

// Snapshot is an immutable copy of everything a renderer needs to draw a frame.
type Snapshot struct {
	Session       string         `json:"session"`
	Frame         uint64         `json:"frame"`
	Cursor        Vec3           `json:"cursor"`
	SelectedColor Color          `json:"selected_color"`
	Status        Status         `json:"status"`
	Bin           Vec3           `json:"bin"`
	Palette       []PaletteEntry `json:"palette"`
	Blocks        []BlockView    `json:"blocks"`
}

// Snapshot copies the current state. The result shares no memory with the Session.
func (s *Session) Snapshot(id string) *Snapshot {
	blocks := make([]BlockView, 0, s.registry.Len())
	for _, b := range s.registry.blocks {
		blocks = append(blocks, BlockView{Block: *b, Grabbed: b == s.grabbed})
	}
	palette := make([]PaletteEntry, len(s.cfg.Palette.Entries))
	copy(palette, s.cfg.Palette.Entries)

	return &Snapshot{
		Session:       id,
		Frame:         s.frames,
		Cursor:        s.cursor,
		SelectedColor: s.selected,
		Status:        s.status,
		Bin:           s.cfg.BinPosition,
		Palette:       palette,
		Blocks:        blocks,
	}
}
