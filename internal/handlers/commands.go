package handlers

import (
	"fmt"
	"strings"
)

const (
	CmdNominate         = "nominate"
	CmdNominees         = "nominees"
	CmdHelp             = "help"
	CmdStartNominations = "startnominations"
	CmdStartVoting      = "startvoting"
	CmdEndElection      = "endelection"
	CmdSchedule         = "schedule"
)

const adminCategory = "Admin"

type command struct {
	name  string
	usage string
	desc  string
	admin bool
}

var commands = []command{
	{name: CmdNominate, usage: CmdNominate + " @member", desc: "Nominate a member for the election"},
	{name: CmdNominees, desc: "List the current nominees"},
	{name: CmdHelp, desc: "Show this message"},
	{name: CmdStartNominations, desc: "Open nominations now", admin: true},
	{name: CmdStartVoting, desc: "Close nominations and start voting now", admin: true},
	{name: CmdEndElection, desc: "End voting and announce the results now", admin: true},
	{name: CmdSchedule, desc: "Show the election schedule", admin: true},
}

func describe(name string) string {
	for _, c := range commands {
		if c.name == name {
			return c.desc
		}
	}
	return ""
}

// helpText lists the member commands, plus the admin ones when asked
func helpText(prefix string, admin bool) string {
	var b strings.Builder
	b.WriteString("**Election commands**\n")
	for _, c := range commands {
		if c.admin {
			continue
		}
		writeCommand(&b, prefix, c)
	}

	if admin {
		b.WriteString("\n**Admin commands**\n")
		for _, c := range commands {
			if c.admin {
				writeCommand(&b, prefix, c)
			}
		}
	}

	b.WriteString("\nVote by picking a nominee on the ballot while voting is open.")
	return b.String()
}

func writeCommand(b *strings.Builder, prefix string, c command) {
	usage := c.usage
	if usage == "" {
		usage = c.name
	}
	fmt.Fprintf(b, "`%s%s` - %s\n", prefix, usage, c.desc)
}
