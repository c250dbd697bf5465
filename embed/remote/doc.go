// Package remote builds embedding models by delegating vectorization to an
// OpenAI-compatible embeddings API instead of training locally.
//
// It targets local inference servers (Ollama, llama.cpp and similar) that
// speak the OpenAI wire protocol without authentication, but works with any
// compatible endpoint.
package remote
