// cdrom_constants.go - command opcodes, FIFO sizes and status bits for
// the CD-ROM drive's port-indexed register file (§4.8).

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2026 ionpsx contributors
https://github.com/ionpsx/core
License: GPLv3 or later
*/

package main

const (
	cdParamFIFOSize   = 16
	cdResponseFIFOSize = 16
	cdDataFIFOSize    = 0x924
)

// Status register bits (port 0x1F801800, read).
const (
	statIndexMask  = 0x03
	statADPBUSY    = 1 << 2
	statPRMEMPT    = 1 << 3
	statPRMWRDY    = 1 << 4
	statRSLRRDY    = 1 << 5
	statDRQSTS     = 1 << 6
	statBUSYSTS    = 1 << 7
)

// Commands (§4.8).
const (
	cmdGetstat = 0x01
	cmdSetloc  = 0x02
	cmdReadN   = 0x06
	cmdPause   = 0x09
	cmdInit    = 0x0A
	cmdDemute  = 0x0C
	cmdSetmode = 0x0E
	cmdSeekL   = 0x15
	cmdTest    = 0x19
	cmdGetID   = 0x1A
	cmdReadTOC = 0x1E
)

// Setmode bits (§4.8).
const (
	modeDoubleSpeed = 1 << 7
	modeXAADPCM     = 1 << 6
	modeWholeSector = 1 << 5
	modeIgnoreBit   = 1 << 4
	modeXAFilter    = 1 << 3
	modeReportIRQs  = 1 << 2
	modeAutoPause   = 1 << 1
	modeCDDAAllow   = 1 << 0
)

// cdCommandDelay is the ~16000-cycle approximation §4.8 specifies
// for most command responses.
const cdCommandDelay = 16000

const sectorDataSize = 0x800
const sectorWholeSize = 0x924

var cdGetIDLicensedResponse = [8]byte{0x02, 0x00, 0x20, 0x00, 'S', 'C', 'E', 'E'}
