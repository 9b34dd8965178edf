// Package payload manages inspection agent bundles.
//
// A payload is the agent binary injected into a target process. Bundles live
// in a local store, are fetched on demand from a remote registry, and reach
// devices through the transport daemon.
//
// Components:
//   - Store: on-disk bundle index with digest verification
//   - Registry: remote fetch client (retries, rate limit, breaker, optional mTLS)
//   - Resolver: store-first lookup with registry fallback
//   - Copier: per-launch delivery contract carried by launch registrations
//
// Storage Layout:
//   - Files are named <name>@<version>.bundle with .gz/.zst for compressed storage
//   - Digests (sha256) and sizes always describe decompressed content
//   - Rescans skip files whose metadata hash is unchanged
//
// Delivery:
//  1. Resolve the bundle (store hit or registry fetch + digest check)
//  2. Bind it to a Copier at launch registration
//  3. The attach flow calls Copy, which streams the bundle to the device
//
// Example Usage:
//
//	store, err := payload.NewStore(cfg.Payload.Dir, logger)
//	resolver := payload.NewResolver(store, registry, metrics, logger)
//	bundle, err := resolver.Resolve(ctx, "memory-inspector", "")
//	copier := payload.NewCopier(bundle, store, transportClient, logger)
package payload
