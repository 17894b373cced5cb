// Package cmd/tokri provides the tokri CLI.
//
// Install:
//
//	go install github.com/shashiranjanraj/tokri/cmd/tokri@latest
//
// Then:
//
//	tokri pos                    # interactive checkout session
//	tokri pos --default-catalog  # skip setup, sell the sample catalogue
//	tokri demo                   # scripted session, no typing required
//
// Configuration is read from config/app.json and .env in the working
// directory: APP_ENV, CURRENCY_PREFIX, DISPLAY_NAME_WIDTH, NO_COLOR.
package main
