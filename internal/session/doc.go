// Package session runs shells on pseudo-terminals and attaches a client
// to them.
//
// A Session owns one PTY and the process running on it. While a client is
// attached, PTY output is copied to the client and client input is
// scanned for keybindings before being forwarded to the PTY. The byte
// that completes a binding is never forwarded; whatever followed it in
// the same read is dropped along with it.
//
//	registry := keymap.NewRegistry()
//	mgr := session.NewManager(session.ManagerConfig{})
//	s, err := mgr.Create(session.Options{Name: "main"})
//	...
//	res, err := s.Attach(ctx, session.Pump(os.Stdin), os.Stdout, session.NewScanner(registry))
//	if res.Reason == session.Detached {
//		...
//	}
package session
