package core

import (
	"button-box/internal/actions"
	"button-box/internal/input"
)

func (s *BoxSystem) pollButtons() {
	for i, d := range s.buttons {
		raw, err := s.io.ReadButton(i)
		if err != nil {
			s.logger.Debugf("Skipping button %d: %v", i, err)
			continue
		}
		// pulled up: a press pulls the line low
		if d.Update(raw) == input.EdgeFell {
			s.pressButton(i)
		}
	}
}

func (s *BoxSystem) pollEncoders() {
	for ch, t := range s.encoders {
		dir := t.Update(s.io.EncoderPosition(ch))
		if dir == input.DirectionNone {
			continue
		}
		s.turnEncoder(ch, dir)
	}
}

func (s *BoxSystem) pressButton(i int) {
	action := actions.ForButton(i)
	if action == actions.NotMapped {
		s.logger.Debugf("Button %d pressed, not mapped", i)
	} else {
		s.logger.Infof("Button %d pressed: %s", i, action)
	}

	action.Invoke(s.seq)

	if s.redis != nil {
		if err := s.redis.PublishButtonEvent(i, action.String()); err != nil {
			s.logger.Warnf("Failed to publish button %d: %v", i, err)
		}
	}
}

func (s *BoxSystem) turnEncoder(ch int, dir input.Direction) {
	binding := actions.EncoderMap[ch]
	action := binding.ForDirection(dir)
	s.logger.Infof("Encoder %d (%s) %s: %s", ch+1, binding.Name, dir, action)

	action.Invoke(s.seq)

	if s.redis != nil {
		if err := s.redis.PublishEncoderEvent(ch+1, dir.String(), action.String()); err != nil {
			s.logger.Warnf("Failed to publish encoder %d: %v", ch+1, err)
		}
	}
}
