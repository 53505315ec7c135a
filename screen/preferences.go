// This file is part of GopherDS.
//
// GopherDS is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDS is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDS.  If not, see <https://www.gnu.org/licenses/>.

package screen

import (
	"github.com/jetsetilly/gopherds/prefs"
)

// Preferences for the screen package. How the values are loaded and stored
// is the business of the host; the compositor only reacts to changes.
type Preferences struct {
	// use the smooth filter when magnifying a screen
	Smooth prefs.Bool

	// magnification ratio for the hybrid and largescreen layouts
	HybridRatio prefs.Int

	// configured size of the pointer marker
	CursorSize prefs.Int

	// blank rows between the screens in the stacked layouts
	ScreenGap prefs.Int

	// show both native-size screens in the hybrid layouts
	SideBoth prefs.Bool
}

// defaults
const (
	defHybridRatio = 3
	defCursorSize  = 2
)

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	err := p.HybridRatio.Set(defHybridRatio)
	if err != nil {
		return nil, err
	}
	err = p.CursorSize.Set(defCursorSize)
	if err != nil {
		return nil, err
	}
	err = p.SideBoth.Set(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Filter returns the preferred resampling filter.
func (p *Preferences) Filter() Filter {
	if p.Smooth.Get().(bool) {
		return FilterSmooth
	}
	return FilterNearest
}

// Side returns the preferred side-screen display policy.
func (p *Preferences) Side() SideScreenDisplay {
	if p.SideBoth.Get().(bool) {
		return SideScreenBoth
	}
	return SideScreenFocusedOnly
}

// ApplyTo updates a layout Spec from the preferences and recomputes the
// geometry.
func (p *Preferences) ApplyTo(spec *Spec) {
	spec.Ratio = p.HybridRatio.Get().(int)
	spec.Gap = p.ScreenGap.Get().(int)
	spec.Side = p.Side()
	spec.Compute()
}

// SetOnChange registers a callback to run whenever any preference value is
// set. Useful for triggering a geometry recompute.
func (p *Preferences) SetOnChange(f func() error) {
	hook := func(_ prefs.Value) error {
		return f()
	}
	p.Smooth.SetHookPost(hook)
	p.HybridRatio.SetHookPost(hook)
	p.CursorSize.SetHookPost(hook)
	p.ScreenGap.SetHookPost(hook)
	p.SideBoth.SetHookPost(hook)
}
