/*
Package ports defines the driven ports (interfaces) of the jsquery render engine.

These interfaces decouple rendering from the backends that share its results
between calls and between replicas of the render service.

# Key Interfaces

  - RenderCache: stores generated JavaScript by chain fingerprint.
  - DistributedLocker: lets one replica render a fingerprint while the others wait for the cached result.
*/
package ports
