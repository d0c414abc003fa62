// Package numtheory generates uniformly random probable primes and safe
// primes of an exact bit length, and assembles RSA moduli from pairs of
// independently generated safe primes.
//
// Searches are sieve accelerated: a candidate walks through a table of small
// primes before any strong primality test is spent on it. The searches are
// Las Vegas algorithms: a returned value is always a verified probable
// prime, but the running time is bounded only in expectation. Callers that
// need bounded latency must wrap the search with their own timeout policy.
package numtheory
