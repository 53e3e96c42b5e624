/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package rose

import "go.uber.org/zap"

// Option configures a GildedRose.
type Option func(*GildedRose)

// WithLogger sets the logger used for per-item debug events and quality
// violations. A nil logger keeps the default no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(g *GildedRose) {
		if log != nil {
			g.log = log
		}
	}
}
