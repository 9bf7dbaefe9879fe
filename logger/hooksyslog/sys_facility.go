/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package hooksyslog

import "strings"

// SyslogFacility represents the facility code of a syslog message
// according to RFC 5424. The facility indicates the type of program
// or system component generating the message.
//
// Facilities are typically used for filtering and routing syslog messages:
//   - KERN: Kernel messages
//   - USER: User-level messages (default for applications)
//   - MAIL: Mail system
//   - DAEMON: System daemons
//   - AUTH: Security/authorization messages
//   - SYSLOG: Messages generated internally by syslogd
//   - LPR: Line printer subsystem
//   - NEWS: Network news subsystem
//   - UUCP: UUCP subsystem
//   - CRON: Clock daemon
//   - AUTHPRIV: Security/authorization messages (private)
//   - FTP: FTP daemon
//   - LOCAL0-LOCAL7: Reserved for local use (application-specific)
type SyslogFacility uint8

const (
	SyslogFacilityKern     SyslogFacility = iota // Kernel messages
	SyslogFacilityUser                     // User-level messages
	SyslogFacilityMail                     // Mail system
	SyslogFacilityDaemon                   // System daemons
	SyslogFacilityAuth                     // Security/authorization messages
	SyslogFacilitySyslog                   // Messages generated internally by syslogd
	SyslogFacilityLpr                      // Line printer subsystem
	SyslogFacilityNews                     // Network news subsystem
	SyslogFacilityUucp                     // UUCP subsystem
	SyslogFacilityCron                     // Clock daemon
	SyslogFacilityAuthPriv                 // Security/authorization messages (private)
	SyslogFacilityFTP                      // FTP daemon
	_                                // unused
	_                                // unused
	_                                // unused
	_                                // unused
	SyslogFacilityLocal0                   // Local use 0
	SyslogFacilityLocal1                   // Local use 1
	SyslogFacilityLocal2                   // Local use 2
	SyslogFacilityLocal3                   // Local use 3
	SyslogFacilityLocal4                   // Local use 4
	SyslogFacilityLocal5                   // Local use 5
	SyslogFacilityLocal6                   // Local use 6
	SyslogFacilityLocal7                   // Local use 7
)

// String returns the RFC 5424 name of the facility in uppercase.
// Returns an empty string for invalid/unknown facility values.
//
// Example:
//
//	fac := SyslogFacilityUser
//	fmt.Println(fac.String()) // Outputs: "USER"
func (f SyslogFacility) String() string {
	switch f {
	case SyslogFacilityKern:
		return "KERN"
	case SyslogFacilityUser:
		return "USER"
	case SyslogFacilityMail:
		return "MAIL"
	case SyslogFacilityDaemon:
		return "DAEMON"
	case SyslogFacilityAuth:
		return "AUTH"
	case SyslogFacilitySyslog:
		return "SYSLOG"
	case SyslogFacilityLpr:
		return "LPR"
	case SyslogFacilityNews:
		return "NEWS"
	case SyslogFacilityUucp:
		return "UUCP"
	case SyslogFacilityCron:
		return "CRON"
	case SyslogFacilityAuthPriv:
		return "AUTHPRIV"
	case SyslogFacilityFTP:
		return "FTP"
	case SyslogFacilityLocal0:
		return "LOCAL0"
	case SyslogFacilityLocal1:
		return "LOCAL1"
	case SyslogFacilityLocal2:
		return "LOCAL2"
	case SyslogFacilityLocal3:
		return "LOCAL3"
	case SyslogFacilityLocal4:
		return "LOCAL4"
	case SyslogFacilityLocal5:
		return "LOCAL5"
	case SyslogFacilityLocal6:
		return "LOCAL6"
	case SyslogFacilityLocal7:
		return "LOCAL7"
	}

	return ""
}

func (f SyslogFacility) Uint8() uint8 {
	return uint8(f)
}

// MakeFacility converts a facility string to a SyslogFacility value.
// The conversion is case-insensitive. Returns 0 if the string doesn't match any known facility.
func MakeFacility(facility string) SyslogFacility {
	switch strings.ToUpper(facility) {
	case SyslogFacilityKern.String():
		return SyslogFacilityKern
	case SyslogFacilityUser.String():
		return SyslogFacilityUser
	case SyslogFacilityMail.String():
		return SyslogFacilityMail
	case SyslogFacilityDaemon.String():
		return SyslogFacilityDaemon
	case SyslogFacilityAuth.String():
		return SyslogFacilityAuth
	case SyslogFacilitySyslog.String():
		return SyslogFacilitySyslog
	case SyslogFacilityLpr.String():
		return SyslogFacilityLpr
	case SyslogFacilityNews.String():
		return SyslogFacilityNews
	case SyslogFacilityUucp.String():
		return SyslogFacilityUucp
	case SyslogFacilityCron.String():
		return SyslogFacilityCron
	case SyslogFacilityAuthPriv.String():
		return SyslogFacilityAuthPriv
	case SyslogFacilityFTP.String():
		return SyslogFacilityFTP
	case SyslogFacilityLocal0.String():
		return SyslogFacilityLocal0
	case SyslogFacilityLocal1.String():
		return SyslogFacilityLocal1
	case SyslogFacilityLocal2.String():
		return SyslogFacilityLocal2
	case SyslogFacilityLocal3.String():
		return SyslogFacilityLocal3
	case SyslogFacilityLocal4.String():
		return SyslogFacilityLocal4
	case SyslogFacilityLocal5.String():
		return SyslogFacilityLocal5
	case SyslogFacilityLocal6.String():
		return SyslogFacilityLocal6
	case SyslogFacilityLocal7.String():
		return SyslogFacilityLocal7
	}

	return 0
}
