/*
main.go

Copyright © 2025 Code Monkey Cybersecurity
Contact: git@cybermonkey.net.au

This file is part of rhino-maintain.

This software is dual-licensed under the Do No Harm License
and the GNU Affero General Public License v3 (AGPL-3.0-or-later).
You may use, modify, and distribute it under the terms of either license.

See LICENSE.agpl and LICENSE.dnh for full details.
*/
package main

import (
	"github.com/CodeMonkeyCybersecurity/rhino-maintain/cmd"
	"github.com/CodeMonkeyCybersecurity/rhino-maintain/pkg/logger"
)

func main() {
	// Console-only logging here: the file tee would create log
	// directories, and no side effect may precede the privilege guard.
	logger.InitFallback()

	cmd.Execute()
}
