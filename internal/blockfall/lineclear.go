package blockfall

// lineClearing blinks the filled rows, then hands them to chunkFall. The
// rows are cleared and scored on exit, after the blink. A pass that finds
// no rows pays the cascade bonus, spawns the next piece and pops.
type lineClearing struct {
	base
	lines      []int
	band       Band
	iterations int
	elapsed    float64
}

func newLineClearing() *lineClearing {
	return &lineClearing{}
}

func (lc *lineClearing) Enter(s *Session) {
	lc.lines = s.Grid.FilledLines()
	if len(lc.lines) > 0 {
		lc.band = Band{Top: lc.lines[0], Bottom: lc.lines[len(lc.lines)-1]}
	}
}

func (lc *lineClearing) Update(s *Session, dt float64) directive {
	if len(lc.lines) == 0 {
		s.AddScore(CascadeBonus(s.Lines, s.ScoreMultiplier()))
		s.Lines = 0
		s.SpawnNext()
		return pop()
	}

	lc.elapsed += dt
	if lc.elapsed >= s.timing.Blink {
		lc.elapsed -= s.timing.Blink
		lc.iterations++
		if lc.iterations >= s.timing.BlinkIterations {
			return transition(newChunkFall(lc.band.Bottom))
		}
	}
	return hold()
}

func (lc *lineClearing) Exit(s *Session) {
	n := len(lc.lines)
	if n == 0 {
		return
	}
	s.Grid.ClearRows(lc.lines)
	points := LineClearPoints(n, s.ScoreMultiplier())
	s.AddScore(points)
	s.TotalLines += n
	s.Lines = 0
	s.logger.Debug("lines cleared", "rows", lc.lines, "points", points, "score", s.Score)
}

func (lc *lineClearing) Render(_ *Session, f *Frame) {
	if len(lc.lines) == 0 || lc.iterations%2 != 0 {
		return
	}
	band := lc.band
	f.HiddenRows = &band
}

// chunkFall drops every connected group above the cleared band one row per
// tick until each lands, then goes back to line clearing.
type chunkFall struct {
	base
	bottom    int
	chunks    []Chunk
	iteration int
	elapsed   float64
}

func newChunkFall(bottom int) *chunkFall {
	return &chunkFall{bottom: bottom}
}

func (cf *chunkFall) Enter(s *Session) {
	cf.chunks = ExtractChunks(&s.Grid, Height-cf.bottom)
	s.logger.Debug("chunks lifted", "count", len(cf.chunks), "above", cf.bottom)
}

func (cf *chunkFall) Update(s *Session, dt float64) directive {
	if len(cf.chunks) == 0 {
		return transition(newLineClearing())
	}

	cf.elapsed += dt
	interval := s.timing.ChunkFall / s.SpeedMultiplier()
	if cf.elapsed < interval {
		return hold()
	}
	cf.elapsed -= interval

	floating := cf.chunks[:0]
	for i := range cf.chunks {
		c := &cf.chunks[i]
		if c.Fits(&s.Grid, cf.iteration+1) {
			floating = append(floating, *c)
			continue
		}
		c.Land(&s.Grid, cf.iteration)
	}
	clear(cf.chunks[len(floating):])
	cf.chunks = floating
	cf.iteration++
	return hold()
}

func (cf *chunkFall) Render(_ *Session, f *Frame) {
	for i := range cf.chunks {
		c := &cf.chunks[i]
		f.Chunks = append(f.Chunks, FloatingChunk{
			Cells: c.Absolute(cf.iteration),
			Tags:  c.Tags,
		})
	}
}
