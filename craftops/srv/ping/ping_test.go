package ping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitPong(t *testing.T) {
	frag := splitPong(`MCPE;A MOTD;686;1.21.50;12;100;1234567890;Geyser;Survival`)
	assert.Equal(t, []string{
		"MCPE", "A MOTD", "686", "1.21.50", "12", "100", "1234567890", "Geyser", "Survival",
	}, frag)
}

func TestSplitPongEscapes(t *testing.T) {
	frag := splitPong(`MCPE;semi\;colon;686`)
	assert.Equal(t, []string{"MCPE", "semi;colon", "686"}, frag)
}
