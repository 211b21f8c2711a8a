package lshw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsHub(t *testing.T) {
	tests := []struct {
		desc string
		hub  bool
	}{
		{"USB hub", true},
		{"USB Hub", true},
		{"USB 2.0 Hub", true},
		{"usb2 hub", true},
		{"USB 3.0 Hub", true},
		{"usb3 hub", true},
		{"USB3.0 Hub", true},
		{"PCI bridge", true},
		{"PCIe bridge", true},
		{"pci bridge", true},
		{"ISA bridge", true},
		{"isa  bridge", true},
		{"SuperSpeed Hub", true}, // catch-all substring
		{"Hubbell adapter", true}, // catch-all matches anywhere in the text
		{"Ethernet interface", false},
		{"SCSI Disk", false},
		{"CPU", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			markup := `<node class="bus"><description>` + tt.desc + `</description></node>`
			if tt.desc == "" {
				markup = `<node class="bus"/>`
			}
			p, err := New(markup, Options{})
			require.NoError(t, err)

			n := parseNode(t, markup)
			assert.Equal(t, tt.hub, p.IsHub(n), "description %q", tt.desc)
		})
	}
}

func TestIsHubUsesFirstDescription(t *testing.T) {
	p, err := New(`<node class="bus"/>`, Options{})
	require.NoError(t, err)

	// Only the first description child is consulted.
	n := parseNode(t, `<node><description>Ethernet interface</description><description>USB hub</description></node>`)
	assert.False(t, p.IsHub(n))

	n = parseNode(t, `<node><description>USB hub</description><description>Ethernet interface</description></node>`)
	assert.True(t, p.IsHub(n))
}
