// seehuhn.de/go/gradient - procedural gradient video sources
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package gradient implements a video source which renders rotated,
// multi-step colour gradients.
//
// A gradient is given by a start colour and up to [MaxSteps] colour
// stops, each with its own opacity and midpoint. [Resolve] works out how
// far the gradient has to travel across the image for a given rotation,
// [BuildTable] chains the stops into transitions, and a [Compositor]
// paints the result as a sequence of thin rotated bands.
//
// The [Source] type wraps these steps behind the [VideoSource] interface
// used by hosts. Hosts discover the source through a [Registry]:
//
//	r := gradient.NewRegistry()
//	if err := gradient.Load(r); err != nil {
//		// ...
//	}
//	src, err := r.Create(gradient.SourceID, settings)
package gradient
