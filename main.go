// Copyright 2025 The A2D-Shells Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "github.com/SeiyonArulampalam/a2d-shells/cmd"

func main() {
	cmd.Execute()
}
