// Copyright (c) The go-echo authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package main

import (
	"log"

	"github.com/gliderlabs/ssh"
)

func handleSession(iface *Interface) ssh.Handler {
	return func(s ssh.Session) {
		_, _, pty := s.Pty()

		log.Printf("%s attached from %s", s.User(), s.RemoteAddr())

		if err := iface.Attach(s, pty); err != nil {
			log.Printf("%s detached, %v", s.User(), err)
			s.Exit(1)
			return
		}

		log.Printf("%s detached", s.User())
		s.Exit(0)
	}
}

// serveSSH serves the serial line to SSH sessions, one at a time. The line
// stays open across sessions.
func serveSSH(iface *Interface, addr string, hostKey string) (err error) {
	srv := &ssh.Server{
		Addr:    addr,
		Handler: handleSession(iface),
	}

	if len(hostKey) > 0 {
		if err = srv.SetOption(ssh.HostKeyFile(hostKey)); err != nil {
			return
		}
	}

	log.Printf("serving serial line over SSH at %s", addr)

	return srv.ListenAndServe()
}
