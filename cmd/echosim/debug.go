// Copyright (c) The go-echo authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package main

import (
	"log"
	"net/http"

	"github.com/arl/statsviz"
)

func serveDebug(addr string) {
	mux := http.NewServeMux()

	if err := statsviz.Register(mux); err != nil {
		log.Printf("could not register statsviz, %v", err)
		return
	}

	log.Printf("runtime statistics at http://%s/debug/statsviz/", addr)

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Printf("debug server error, %v", err)
	}
}
