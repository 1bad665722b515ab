package returns

import "time"

func (s *Service) SetClock(now func() time.Time) { s.timeNow = now }

func (s *Service) SetNumberGenerator(gen func(time.Time) string) { s.newNumber = gen }

func (v *Validator) SetClock(now func() time.Time) { v.timeNow = now }

func (d *RefundDispatcher) SetClock(now func() time.Time) { d.timeNow = now }
