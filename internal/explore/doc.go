// Package explore drives the interactive console session.
//
// # Flow
//
// A Session repeats one cycle until the user declines to restart:
//
//  1. Ask for a city, month and day, re-prompting on invalid answers
//  2. Confirm the selection, starting over when it is rejected
//  3. Load and filter the city's trips
//  4. Print the time, station, duration and user reports
//  5. Page through raw rows on request
//  6. Ask whether to restart
//
// # Basic Usage
//
//	loader := dataset.NewLoader(settings, logger)
//	session := explore.NewSession(settings, loader, os.Stdin, os.Stdout, logger)
//	if err := session.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// End of input stops the session cleanly. Load errors are returned.
package explore
